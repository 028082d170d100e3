package awsagent

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/omics"
	"github.com/aws/aws-sdk-go-v2/service/omics/document"
	"github.com/omics-cicd/release-automation/shared/errors"
)

type WorkflowRun struct {
	WorkflowID string
	RoleARN    string
	Name       string
	OutputURI  string
	Parameters map[string]any
	// RequestID is the idempotency token; StartRun calls sharing it start a single run.
	RequestID string
}

func (a *Agent) StartRun(ctx context.Context, run WorkflowRun) (string, error) {
	input := &omics.StartRunInput{
		WorkflowId: aws.String(run.WorkflowID),
		RoleArn:    aws.String(run.RoleARN),
		Name:       aws.String(run.Name),
		OutputUri:  aws.String(run.OutputURI),
		RequestId:  aws.String(run.RequestID),
	}
	if run.Parameters != nil {
		input.Parameters = document.NewLazyDocument(run.Parameters)
	}

	output, err := a.omicsClient.StartRun(ctx, input)
	if err != nil {
		return "", errors.Wrap(err)
	}

	return aws.ToString(output.Id), nil
}
