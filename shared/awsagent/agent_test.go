package awsagent

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codebuild"
	codebuildtypes "github.com/aws/aws-sdk-go-v2/service/codebuild/types"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/aws/aws-sdk-go-v2/service/omics"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	mock_awsagent "github.com/omics-cicd/release-automation/shared/awsagent/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAgent(t *testing.T, opts ...Option) *Agent {
	opts = append([]Option{WithAWSConfig(aws.Config{Region: "us-east-1"})}, opts...)
	agent, err := NewAgent(context.Background(), opts...)
	require.NoError(t, err)
	return agent
}

func TestNewAgent_UsesRegionFromConfig(t *testing.T) {
	agent := newTestAgent(t, WithRegion("eu-west-1"))
	require.Equal(t, "us-east-1", agent.Region)
	require.NotNil(t, agent.ecrClient)
	require.NotNil(t, agent.omicsClient)
}

func TestParseRepositoryReference(t *testing.T) {
	require.Equal(t,
		RepositoryReference{RegistryID: "123456789012", Region: "us-east-1", Name: "my-repo"},
		ParseRepositoryReference("123456789012.dkr.ecr.us-east-1.amazonaws.com/my-repo"))
	require.Equal(t,
		RepositoryReference{RegistryID: "123456789012", Region: "cn-north-1", Name: "quay/biocontainers/samtools"},
		ParseRepositoryReference("123456789012.dkr.ecr.cn-north-1.amazonaws.com.cn/quay/biocontainers/samtools"))
	require.Equal(t,
		RepositoryReference{Name: "dockerhub/library/ubuntu"},
		ParseRepositoryReference("dockerhub/library/ubuntu"))
	require.Equal(t, "123456789012/my-repo", RepositoryReference{RegistryID: "123456789012", Name: "my-repo"}.String())
}

func TestGetRepositoryPolicy_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockECR := mock_awsagent.NewMockECRClient(ctrl)
	agent := newTestAgent(t, WithECRClient(mockECR))

	mockECR.EXPECT().
		GetRepositoryPolicy(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *ecr.GetRepositoryPolicyInput, opts ...func(*ecr.Options)) (*ecr.GetRepositoryPolicyOutput, error) {
			require.Equal(t, "my-repo", aws.ToString(input.RepositoryName))
			require.Equal(t, "123456789012", aws.ToString(input.RegistryId))
			return &ecr.GetRepositoryPolicyOutput{PolicyText: aws.String(`{"Statement": []}`)}, nil
		})

	found, policyText, err := agent.GetRepositoryPolicy(context.Background(), RepositoryReference{RegistryID: "123456789012", Name: "my-repo"})
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, `{"Statement": []}`, policyText)
}

func applyECROptions(optFns []func(*ecr.Options)) ecr.Options {
	options := ecr.Options{Region: "us-east-1"}
	for _, optFn := range optFns {
		optFn(&options)
	}
	return options
}

func TestGetRepositoryPolicy_OtherRegion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockECR := mock_awsagent.NewMockECRClient(ctrl)
	agent := newTestAgent(t, WithECRClient(mockECR))
	repository := ParseRepositoryReference("123456789012.dkr.ecr.eu-west-1.amazonaws.com/my-repo")

	mockECR.EXPECT().
		GetRepositoryPolicy(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *ecr.GetRepositoryPolicyInput, opts ...func(*ecr.Options)) (*ecr.GetRepositoryPolicyOutput, error) {
			require.Equal(t, "my-repo", aws.ToString(input.RepositoryName))
			require.Equal(t, "eu-west-1", applyECROptions(opts).Region)
			return &ecr.GetRepositoryPolicyOutput{PolicyText: aws.String(`{"Statement": []}`)}, nil
		})
	mockECR.EXPECT().
		SetRepositoryPolicy(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *ecr.SetRepositoryPolicyInput, opts ...func(*ecr.Options)) (*ecr.SetRepositoryPolicyOutput, error) {
			require.Equal(t, "eu-west-1", applyECROptions(opts).Region)
			return &ecr.SetRepositoryPolicyOutput{}, nil
		})

	found, _, err := agent.GetRepositoryPolicy(context.Background(), repository)
	require.NoError(t, err)
	require.True(t, found)
	require.NoError(t, agent.SetRepositoryPolicy(context.Background(), repository, `{"Statement": []}`))
}

func TestGetRepositoryPolicy_AgentRegionNeedsNoOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockECR := mock_awsagent.NewMockECRClient(ctrl)
	agent := newTestAgent(t, WithECRClient(mockECR))

	mockECR.EXPECT().
		GetRepositoryPolicy(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *ecr.GetRepositoryPolicyInput, opts ...func(*ecr.Options)) (*ecr.GetRepositoryPolicyOutput, error) {
			require.Empty(t, opts)
			return &ecr.GetRepositoryPolicyOutput{PolicyText: aws.String(`{"Statement": []}`)}, nil
		})

	_, _, err := agent.GetRepositoryPolicy(context.Background(), ParseRepositoryReference("123456789012.dkr.ecr.us-east-1.amazonaws.com/my-repo"))
	require.NoError(t, err)
}

func TestGetRepositoryPolicy_NoPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockECR := mock_awsagent.NewMockECRClient(ctrl)
	agent := newTestAgent(t, WithECRClient(mockECR))

	mockECR.EXPECT().
		GetRepositoryPolicy(gomock.Any(), gomock.Any()).
		Return(nil, &ecrtypes.RepositoryPolicyNotFoundException{Message: aws.String("no policy")})

	found, _, err := agent.GetRepositoryPolicy(context.Background(), RepositoryReference{Name: "my-repo"})
	require.NoError(t, err)
	require.False(t, found)
}

func TestGetRepositoryPolicy_RepositoryMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockECR := mock_awsagent.NewMockECRClient(ctrl)
	agent := newTestAgent(t, WithECRClient(mockECR))

	mockECR.EXPECT().
		GetRepositoryPolicy(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *ecr.GetRepositoryPolicyInput, opts ...func(*ecr.Options)) (*ecr.GetRepositoryPolicyOutput, error) {
			require.Nil(t, input.RegistryId)
			return nil, &ecrtypes.RepositoryNotFoundException{Message: aws.String("missing")}
		})

	_, _, err := agent.GetRepositoryPolicy(context.Background(), RepositoryReference{Name: "missing"})
	require.Error(t, err)
	require.True(t, IsRepositoryNotFoundException(err))
}

func TestIsRepositoryNotFoundException_GenericAPIError(t *testing.T) {
	require.True(t, IsRepositoryNotFoundException(&smithy.GenericAPIError{Code: "RepositoryNotFoundException"}))
	require.False(t, IsRepositoryNotFoundException(&smithy.GenericAPIError{Code: "AccessDeniedException"}))
	require.False(t, IsRepositoryNotFoundException(nil))
}

func TestSetRepositoryPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockECR := mock_awsagent.NewMockECRClient(ctrl)
	agent := newTestAgent(t, WithECRClient(mockECR))

	mockECR.EXPECT().
		SetRepositoryPolicy(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *ecr.SetRepositoryPolicyInput, opts ...func(*ecr.Options)) (*ecr.SetRepositoryPolicyOutput, error) {
			require.Equal(t, "my-repo", aws.ToString(input.RepositoryName))
			require.Equal(t, `{"Version":"2008-10-17"}`, aws.ToString(input.PolicyText))
			return &ecr.SetRepositoryPolicyOutput{}, nil
		})

	err := agent.SetRepositoryPolicy(context.Background(), RepositoryReference{Name: "my-repo"}, `{"Version":"2008-10-17"}`)
	require.NoError(t, err)
}

func TestStartBuild_OverridesEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCodeBuild := mock_awsagent.NewMockCodeBuildClient(ctrl)
	agent := newTestAgent(t, WithCodeBuildClient(mockCodeBuild))

	mockCodeBuild.EXPECT().
		StartBuild(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *codebuild.StartBuildInput, opts ...func(*codebuild.Options)) (*codebuild.StartBuildOutput, error) {
			require.Equal(t, "release_project", aws.ToString(input.ProjectName))
			require.Equal(t, codebuildtypes.ArtifactsTypeNoArtifacts, input.ArtifactsOverride.Type)
			require.Len(t, input.EnvironmentVariablesOverride, 1)
			require.Equal(t, "workflowName", aws.ToString(input.EnvironmentVariablesOverride[0].Name))
			require.Equal(t, codebuildtypes.EnvironmentVariableTypePlaintext, input.EnvironmentVariablesOverride[0].Type)
			return &codebuild.StartBuildOutput{Build: &codebuildtypes.Build{Id: aws.String("release_project:1")}}, nil
		})

	buildID, err := agent.StartBuild(context.Background(), "release_project", []BuildVariable{{Name: "workflowName", Value: "rnaseq"}})
	require.NoError(t, err)
	require.Equal(t, "release_project:1", buildID)
}

func TestStartRun_PassesParametersDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOmics := mock_awsagent.NewMockOmicsClient(ctrl)
	agent := newTestAgent(t, WithOmicsClient(mockOmics))

	mockOmics.EXPECT().
		StartRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *omics.StartRunInput, opts ...func(*omics.Options)) (*omics.StartRunOutput, error) {
			require.Equal(t, "1234567", aws.ToString(input.WorkflowId))
			require.Equal(t, "req-1", aws.ToString(input.RequestId))
			serialized, err := input.Parameters.MarshalSmithyDocument()
			require.NoError(t, err)
			require.JSONEq(t, `{"input": "s3://bucket/sample.fastq"}`, string(serialized))
			return &omics.StartRunOutput{Id: aws.String("run-1")}, nil
		})

	runID, err := agent.StartRun(context.Background(), WorkflowRun{
		WorkflowID: "1234567",
		RoleARN:    "arn:aws:iam::123456789012:role/tester",
		Name:       "test-run",
		OutputURI:  "s3://bucket/output",
		Parameters: map[string]any{"input": "s3://bucket/sample.fastq"},
		RequestID:  "req-1",
	})
	require.NoError(t, err)
	require.Equal(t, "run-1", runID)
}

func TestParseS3URI(t *testing.T) {
	location, err := ParseS3URI("s3://scripts/rnaseq/staging/abc123/test.parameters.json")
	require.NoError(t, err)
	require.Equal(t, S3Location{Bucket: "scripts", Key: "rnaseq/staging/abc123/test.parameters.json"}, location)
	require.Equal(t, "s3://scripts/rnaseq/staging/abc123/test.parameters.json", location.String())

	for _, invalid := range []string{"https://scripts/key", "s3://", "s3://bucket", "s3://bucket/", "s3:///key"} {
		_, err := ParseS3URI(invalid)
		require.Error(t, err, invalid)
	}
}

func TestGetObject_ReadsBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockS3 := mock_awsagent.NewMockS3Client(ctrl)
	agent := newTestAgent(t, WithS3Client(mockS3))

	mockS3.EXPECT().
		GetObject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			require.Equal(t, "scripts", aws.ToString(input.Bucket))
			require.Equal(t, "params.json", aws.ToString(input.Key))
			return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(`{"a": 1}`))}, nil
		})

	data, err := agent.GetObject(context.Background(), S3Location{Bucket: "scripts", Key: "params.json"})
	require.NoError(t, err)
	require.Equal(t, `{"a": 1}`, string(data))
}

func TestCallerIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSTS := mock_awsagent.NewMockSTSClient(ctrl)
	agent := newTestAgent(t, WithSTSClient(mockSTS))

	mockSTS.EXPECT().
		GetCallerIdentity(gomock.Any(), gomock.Any()).
		Return(&sts.GetCallerIdentityOutput{
			Account: aws.String("123456789012"),
			Arn:     aws.String("arn:aws:sts::123456789012:assumed-role/cicd/session"),
		}, nil)

	account, arn, err := agent.CallerIdentity(context.Background())
	require.NoError(t, err)
	require.Equal(t, "123456789012", account)
	require.Contains(t, arn, "assumed-role/cicd")
}
