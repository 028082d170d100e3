package awsagent

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/service/codebuild"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/omics"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

//go:generate go run go.uber.org/mock/mockgen@v0.2.0 -destination=./mocks/mock_clients.go -package=mock_awsagent -source=clients.go

type ECRClient interface {
	GetRepositoryPolicy(ctx context.Context, params *ecr.GetRepositoryPolicyInput, optFns ...func(*ecr.Options)) (*ecr.GetRepositoryPolicyOutput, error)
	SetRepositoryPolicy(ctx context.Context, params *ecr.SetRepositoryPolicyInput, optFns ...func(*ecr.Options)) (*ecr.SetRepositoryPolicyOutput, error)
}

type CodeBuildClient interface {
	StartBuild(ctx context.Context, params *codebuild.StartBuildInput, optFns ...func(*codebuild.Options)) (*codebuild.StartBuildOutput, error)
}

type OmicsClient interface {
	StartRun(ctx context.Context, params *omics.StartRunInput, optFns ...func(*omics.Options)) (*omics.StartRunOutput, error)
}

type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type STSClient interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

var (
	_ ECRClient       = (*ecr.Client)(nil)
	_ CodeBuildClient = (*codebuild.Client)(nil)
	_ OmicsClient     = (*omics.Client)(nil)
	_ S3Client        = (*s3.Client)(nil)
	_ STSClient       = (*sts.Client)(nil)
)
