package main

import (
	"context"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/omics-cicd/release-automation/prometheus"
	"github.com/omics-cicd/release-automation/releasetrigger"
	"github.com/omics-cicd/release-automation/shared"
	"github.com/omics-cicd/release-automation/shared/awsagent"
	"github.com/omics-cicd/release-automation/shared/cicdconfig"
	"github.com/omics-cicd/release-automation/shared/errorreporter"
	"github.com/omics-cicd/release-automation/shared/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const componentName = "releasetrigger"

func main() {
	cicdconfig.ConfigureLogging(true)
	errorreporter.Init(componentName, version.Version())

	cicdAccountID := viper.GetString(cicdconfig.CICDAccountIDKey)
	if cicdAccountID == "" {
		logrus.Fatalf("%s environment variable is required", cicdconfig.CICDAccountIDLegacyEnv)
	}

	agent, err := awsagent.NewAgent(context.Background(), awsagent.WithRegion(viper.GetString(cicdconfig.AWSRegionKey)))
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize AWS agent")
	}

	handler := releasetrigger.NewHandler(agent, viper.GetString(cicdconfig.ReleaseProjectNameKey), cicdAccountID)
	lambda.Start(func(ctx context.Context, event events.S3Event) (releasetrigger.Response, error) {
		defer shared.RecoverAndReport()

		response, err := handler.Handle(ctx, event)
		if err != nil {
			logrus.WithError(err).Error("failed to launch release build")
		}
		if pushErr := prometheus.Push(viper.GetString(cicdconfig.MetricsPushGatewayKey), componentName); pushErr != nil {
			logrus.WithError(pushErr).Warn("failed to push metrics")
		}
		return response, err
	})
}
