package errorreporter

import (
	"github.com/bugsnag/bugsnag-go/v2"
	"github.com/omics-cicd/release-automation/shared/cicdconfig"
	"github.com/omics-cicd/release-automation/shared/logrus_bugsnag"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Init installs the Bugsnag logrus hook when an API key is configured. Notifications are sent
// synchronously because every component exits right after its single unit of work.
func Init(component string, version string) {
	apiKey := viper.GetString(cicdconfig.ErrorReportingAPIKeyKey)
	if apiKey == "" {
		logrus.Debug("error reporting disabled")
		return
	}

	logrus.Infof("starting error reporting for component '%s' with version '%s'", component, version)
	bugsnag.Configure(bugsnag.Configuration{
		APIKey:          apiKey,
		AppType:         component,
		AppVersion:      version,
		ReleaseStage:    viper.GetString(cicdconfig.ErrorReportingStageKey),
		ProjectPackages: []string{"main", "github.com/omics-cicd/release-automation/*"},
		Synchronous:     true,
		Logger:          logrus.StandardLogger(),
	})

	hook, err := logrus_bugsnag.NewBugsnagHook()
	if err != nil {
		logrus.WithError(err).Panic("failed to initialize bugsnag")
	}
	logrus.AddHook(hook)
}
