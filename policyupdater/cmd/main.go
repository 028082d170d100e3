package main

import (
	"context"
	"github.com/omics-cicd/release-automation/policyupdater"
	"github.com/omics-cicd/release-automation/prometheus"
	"github.com/omics-cicd/release-automation/shared"
	"github.com/omics-cicd/release-automation/shared/awsagent"
	"github.com/omics-cicd/release-automation/shared/cicdconfig"
	"github.com/omics-cicd/release-automation/shared/errorreporter"
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/omics-cicd/release-automation/shared/policymerger"
	"github.com/omics-cicd/release-automation/shared/repositorynames"
	"github.com/omics-cicd/release-automation/shared/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"os"
)

const componentName = "policyupdater"

func repositoriesFromFlags() ([]string, error) {
	reportPath := viper.GetString(cicdconfig.ContainerPullerReportKey)
	configPath := viper.GetString(cicdconfig.WorkflowConfigKey)

	switch {
	case reportPath != "" && configPath != "":
		return nil, errors.Errorf("--%s and --%s are mutually exclusive", cicdconfig.ContainerPullerReportKey, cicdconfig.WorkflowConfigKey)
	case reportPath != "":
		return repositorynames.FromFile(reportPath, repositorynames.FormatExecutionReport)
	case configPath != "":
		return repositorynames.FromFile(configPath, repositorynames.FormatWorkflowConfig)
	default:
		return nil, errors.Errorf("one of --%s or --%s is required", cicdconfig.ContainerPullerReportKey, cicdconfig.WorkflowConfigKey)
	}
}

type agentFactory func(ctx context.Context) (*awsagent.Agent, error)

func newAgentFromConfig(ctx context.Context) (*awsagent.Agent, error) {
	return awsagent.NewAgent(ctx, awsagent.WithRegion(viper.GetString(cicdconfig.AWSRegionKey)))
}

func run(ctx context.Context, accounts []string, newAgent agentFactory) error {
	repositories, err := repositoriesFromFlags()
	if err != nil {
		return errors.Wrap(err)
	}
	if len(repositories) == 0 {
		logrus.Warn("no repositories found, nothing to update")
		return nil
	}

	agent, err := newAgent(ctx)
	if err != nil {
		return errors.Wrap(err)
	}

	accountID, arn, err := agent.CallerIdentity(ctx)
	if err != nil {
		return errors.Wrap(err)
	}
	logrus.WithField("account", accountID).WithField("arn", arn).WithField("region", agent.Region).Info("Running as")

	merger := policymerger.NewMerger(policymerger.WithServicePrincipal(viper.GetString(cicdconfig.ServicePrincipalKey)))
	updater := policyupdater.NewUpdater(agent, merger, policyupdater.WithDryRun(viper.GetBool(cicdconfig.DryRunKey)))

	logrus.WithField("repositories", repositories).WithField("accounts", accounts).Info("Updating repository policies")
	return updater.UpdateRepositories(ctx, repositories, accounts)
}

func main() {
	defer shared.RecoverAndReport()

	flags := pflag.NewFlagSet(componentName, pflag.ExitOnError)
	flags.Usage = func() {
		logrus.Infof("usage: %s [flags] ACCOUNT_ID [ACCOUNT_ID...]\n%s", componentName, flags.FlagUsages())
	}
	cicdconfig.InitPolicyUpdaterFlags(flags)
	if err := cicdconfig.BindFlags(flags, os.Args[1:]); err != nil {
		logrus.WithError(err).Fatal("failed to parse flags")
	}
	cicdconfig.ConfigureLogging(false)
	errorreporter.Init(componentName, version.Version())

	accounts := flags.Args()
	if len(accounts) == 0 {
		flags.Usage()
		logrus.Fatal("at least one account id is required")
	}

	runErr := run(context.Background(), accounts, newAgentFromConfig)

	if err := prometheus.Push(viper.GetString(cicdconfig.MetricsPushGatewayKey), componentName); err != nil {
		logrus.WithError(err).Warn("failed to push metrics")
	}

	if runErr != nil {
		logrus.WithError(runErr).Fatal("failed to update repository policies")
	}
}
