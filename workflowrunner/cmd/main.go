package main

import (
	"context"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/omics-cicd/release-automation/prometheus"
	"github.com/omics-cicd/release-automation/shared"
	"github.com/omics-cicd/release-automation/shared/awsagent"
	"github.com/omics-cicd/release-automation/shared/cicdconfig"
	"github.com/omics-cicd/release-automation/shared/errorreporter"
	"github.com/omics-cicd/release-automation/shared/version"
	"github.com/omics-cicd/release-automation/workflowrunner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const componentName = "workflowrunner"

func main() {
	cicdconfig.ConfigureLogging(true)
	errorreporter.Init(componentName, version.Version())

	agent, err := awsagent.NewAgent(context.Background(), awsagent.WithRegion(viper.GetString(cicdconfig.AWSRegionKey)))
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize AWS agent")
	}

	handler := workflowrunner.NewHandler(agent, viper.GetString(cicdconfig.WorkflowRunNameKey))
	lambda.Start(func(ctx context.Context, request workflowrunner.RunRequest) (workflowrunner.RunResponse, error) {
		defer shared.RecoverAndReport()

		response, err := handler.Handle(ctx, request)
		if err != nil {
			logrus.WithError(err).WithField("workflowId", request.WorkflowID).Error("failed to start workflow run")
		}
		if pushErr := prometheus.Push(viper.GetString(cicdconfig.MetricsPushGatewayKey), componentName); pushErr != nil {
			logrus.WithError(pushErr).Warn("failed to push metrics")
		}
		return response, err
	})
}
