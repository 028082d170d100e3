package awsagent

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/codebuild"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/omics"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/sirupsen/logrus"
)

// Agent performs the handful of AWS calls the release tooling needs. Clients that are not
// injected through options are created from the default credential chain.
type Agent struct {
	awsConfig       *aws.Config
	ecrClient       ECRClient
	codeBuildClient CodeBuildClient
	omicsClient     OmicsClient
	s3Client        S3Client
	stsClient       STSClient
	Region          string
}

type Option func(*Agent)

func WithAWSConfig(cfg aws.Config) Option {
	return func(a *Agent) {
		a.awsConfig = &cfg
	}
}

// WithRegion is used only when the AWS config is loaded from the environment.
func WithRegion(region string) Option {
	return func(a *Agent) {
		a.Region = region
	}
}

func WithECRClient(client ECRClient) Option {
	return func(a *Agent) {
		a.ecrClient = client
	}
}

func WithCodeBuildClient(client CodeBuildClient) Option {
	return func(a *Agent) {
		a.codeBuildClient = client
	}
}

func WithOmicsClient(client OmicsClient) Option {
	return func(a *Agent) {
		a.omicsClient = client
	}
}

func WithS3Client(client S3Client) Option {
	return func(a *Agent) {
		a.s3Client = client
	}
}

func WithSTSClient(client STSClient) Option {
	return func(a *Agent) {
		a.stsClient = client
	}
}

func NewAgent(ctx context.Context, opts ...Option) (*Agent, error) {
	a := &Agent{}
	for _, opt := range opts {
		opt(a)
	}

	if a.awsConfig == nil {
		var loadOptions []func(*config.LoadOptions) error
		if a.Region != "" {
			loadOptions = append(loadOptions, config.WithRegion(a.Region))
		}
		awsConfig, err := config.LoadDefaultConfig(ctx, loadOptions...)
		if err != nil {
			return nil, errors.Errorf("failed to load AWS config: %w", err)
		}
		a.awsConfig = &awsConfig
	}
	a.Region = a.awsConfig.Region

	if a.ecrClient == nil {
		a.ecrClient = ecr.NewFromConfig(*a.awsConfig)
	}
	if a.codeBuildClient == nil {
		a.codeBuildClient = codebuild.NewFromConfig(*a.awsConfig)
	}
	if a.omicsClient == nil {
		a.omicsClient = omics.NewFromConfig(*a.awsConfig)
	}
	if a.s3Client == nil {
		a.s3Client = s3.NewFromConfig(*a.awsConfig)
	}
	if a.stsClient == nil {
		a.stsClient = sts.NewFromConfig(*a.awsConfig)
	}

	logrus.WithField("region", a.Region).Debug("AWS agent initialized")
	return a, nil
}

// CallerIdentity returns the account and ARN the agent's credentials resolve to.
func (a *Agent) CallerIdentity(ctx context.Context) (accountID string, arn string, err error) {
	output, err := a.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", "", errors.Errorf("unable to get STS caller identity: %w", err)
	}

	return aws.ToString(output.Account), aws.ToString(output.Arn), nil
}
