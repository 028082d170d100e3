package prometheus

import (
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	repositoryPoliciesUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecr_repository_policies_updated",
		Help: "The total number of ECR repository policies written",
	})
	repositoryPoliciesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecr_repository_policy_updates_failed",
		Help: "The total number of ECR repository policy updates that failed",
	})
	policyStatementsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecr_policy_statements_dropped",
		Help: "The total number of existing statements replaced or collapsed while merging repository policies",
	})
	releaseBuildsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "release_builds_started",
		Help: "The total number of release CodeBuild builds started",
	})
	workflowRunsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthomics_workflow_runs_started",
		Help: "The total number of HealthOmics workflow runs started",
	})
	downstreamInvocationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "downstream_invocations_failed",
		Help: "The total number of failed CodeBuild or HealthOmics invocations",
	}, []string{"service"})
)

func IncrementRepositoryPoliciesUpdated(count int) {
	repositoryPoliciesUpdated.Add(float64(count))
}

func IncrementRepositoryPoliciesFailed(count int) {
	repositoryPoliciesFailed.Add(float64(count))
}

func IncrementPolicyStatementsDropped(count int) {
	policyStatementsDropped.Add(float64(count))
}

func IncrementReleaseBuildsStarted(count int) {
	releaseBuildsStarted.Add(float64(count))
}

func IncrementWorkflowRunsStarted(count int) {
	workflowRunsStarted.Add(float64(count))
}

func IncrementDownstreamInvocationsFailed(service string) {
	downstreamInvocationsFailed.WithLabelValues(service).Inc()
}

// Push sends the default registry to a Pushgateway under the given job name. Short-lived
// processes cannot be scraped, so this is called once before they exit.
func Push(gatewayURL string, job string) error {
	if gatewayURL == "" {
		return nil
	}

	err := push.New(gatewayURL, job).Gatherer(prometheus.DefaultGatherer).Push()
	if err != nil {
		return errors.Errorf("failed to push metrics to %s: %w", gatewayURL, err)
	}
	return nil
}
