package testbase

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/omics-cicd/release-automation/shared/awsagent"
	mock_awsagent "github.com/omics-cicd/release-automation/shared/awsagent/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const TestRegion = "us-east-1"

// AWSMocksSuiteBase gives every test a fresh awsagent.Agent whose clients are all gomock mocks,
// so any AWS call a test did not expect fails it.
type AWSMocksSuiteBase struct {
	suite.Suite
	Controller *gomock.Controller
	ECR        *mock_awsagent.MockECRClient
	CodeBuild  *mock_awsagent.MockCodeBuildClient
	Omics      *mock_awsagent.MockOmicsClient
	S3         *mock_awsagent.MockS3Client
	STS        *mock_awsagent.MockSTSClient
	Agent      *awsagent.Agent
}

func (s *AWSMocksSuiteBase) SetupTest() {
	s.Controller = gomock.NewController(s.T())
	s.ECR = mock_awsagent.NewMockECRClient(s.Controller)
	s.CodeBuild = mock_awsagent.NewMockCodeBuildClient(s.Controller)
	s.Omics = mock_awsagent.NewMockOmicsClient(s.Controller)
	s.S3 = mock_awsagent.NewMockS3Client(s.Controller)
	s.STS = mock_awsagent.NewMockSTSClient(s.Controller)

	agent, err := awsagent.NewAgent(context.Background(),
		awsagent.WithAWSConfig(aws.Config{Region: TestRegion}),
		awsagent.WithECRClient(s.ECR),
		awsagent.WithCodeBuildClient(s.CodeBuild),
		awsagent.WithOmicsClient(s.Omics),
		awsagent.WithS3Client(s.S3),
		awsagent.WithSTSClient(s.STS),
	)
	s.Require().NoError(err)
	s.Agent = agent
}

func (s *AWSMocksSuiteBase) TearDownTest() {
	s.Controller.Finish()
	s.Agent = nil
}
