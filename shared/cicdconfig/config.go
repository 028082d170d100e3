package cicdconfig

import (
	"github.com/omics-cicd/release-automation/shared"
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"strings"
)

const (
	EnvPrefix                   = "OMICS_CICD"
	DebugLogKey                 = "debug" // Whether to enable debug logging
	DebugLogDefault             = false
	AWSRegionKey                = "aws-region" // Overrides the region from the default AWS credential chain
	ErrorReportingAPIKeyKey     = "error-reporting-api-key"
	ErrorReportingStageKey      = "error-reporting-stage"
	ErrorReportingStageDefault  = "production"
	MetricsPushGatewayKey       = "metrics-push-gateway" // Prometheus Pushgateway URL; metrics are pushed at the end of each invocation when set
	ServicePrincipalKey         = "service-principal"
	ServicePrincipalDefault     = "omics.amazonaws.com"
	ContainerPullerReportKey    = "container-puller-report"
	WorkflowConfigKey           = "workflow-config"
	DryRunKey                   = "dry-run"
	DryRunDefault               = false
	ReleaseProjectNameKey       = "release-project-name"
	ReleaseProjectNameDefault   = "release_project"
	CICDAccountIDKey            = "cicd-account-id"
	CICDAccountIDLegacyEnv      = "CICD_ACCOUNT_ID"
	WorkflowRunNameKey          = "workflow-run-name"
	WorkflowRunNameDefault      = "test-run"
	ConfigFilePath              = "/etc/omics-cicd"
	ErrorReportingAPIKeyDefault = ""
)

func init() {
	viper.SetDefault(DebugLogKey, DebugLogDefault)
	viper.SetDefault(ErrorReportingAPIKeyKey, ErrorReportingAPIKeyDefault)
	viper.SetDefault(ErrorReportingStageKey, ErrorReportingStageDefault)
	viper.SetDefault(MetricsPushGatewayKey, "")
	viper.SetDefault(ServicePrincipalKey, ServicePrincipalDefault)
	viper.SetDefault(DryRunKey, DryRunDefault)
	viper.SetDefault(ReleaseProjectNameKey, ReleaseProjectNameDefault)
	viper.SetDefault(WorkflowRunNameKey, WorkflowRunNameDefault)
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// The release Lambda has always been deployed with an unprefixed CICD_ACCOUNT_ID
	shared.Must(viper.BindEnv(CICDAccountIDKey, EnvPrefix+"_CICD_ACCOUNT_ID", CICDAccountIDLegacyEnv))

	viper.SetConfigName("config")
	viper.AddConfigPath(ConfigFilePath)
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			logrus.WithError(err).Panic("Failed to read config file")
		}
	}
}

// InitCommonFlags registers the flags shared by every component on flags.
func InitCommonFlags(flags *pflag.FlagSet) {
	flags.Bool(DebugLogKey, DebugLogDefault, "Enable debug logging")
	flags.String(AWSRegionKey, "", "AWS region, defaults to the region of the AWS credential chain")
	flags.String(MetricsPushGatewayKey, "", "Prometheus Pushgateway URL to push run metrics to")
}

// InitPolicyUpdaterFlags registers the repository policy CLI flags on flags.
func InitPolicyUpdaterFlags(flags *pflag.FlagSet) {
	InitCommonFlags(flags)
	flags.String(ContainerPullerReportKey, "", "output of step-functions describe-execution for omx-container-puller")
	flags.String(WorkflowConfigKey, "", "workflow container configuration with withName selectors")
	flags.Bool(DryRunKey, DryRunDefault, "Log the merged policies instead of writing them")
	flags.String(ServicePrincipalKey, ServicePrincipalDefault, "Service principal granted pull access")
}

// BindFlags parses args into flags and makes the values visible through viper.
func BindFlags(flags *pflag.FlagSet, args []string) error {
	if err := viper.BindPFlags(flags); err != nil {
		return errors.Wrap(err)
	}
	if err := flags.Parse(args); err != nil {
		return errors.Wrap(err)
	}
	return nil
}

func ConfigureLogging(jsonFormat bool) {
	if jsonFormat {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if viper.GetBool(DebugLogKey) {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}
