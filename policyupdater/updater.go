package policyupdater

import (
	"context"
	"github.com/omics-cicd/release-automation/prometheus"
	"github.com/omics-cicd/release-automation/shared/awsagent"
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/omics-cicd/release-automation/shared/policymerger"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var (
	ErrFetchPolicy = errors.NewSentinelError("failed to fetch repository policy")
	ErrWritePolicy = errors.NewSentinelError("failed to write repository policy")
)

// PolicyStore is the part of awsagent.Agent the updater needs.
type PolicyStore interface {
	GetRepositoryPolicy(ctx context.Context, repository awsagent.RepositoryReference) (bool, string, error)
	SetRepositoryPolicy(ctx context.Context, repository awsagent.RepositoryReference, policyText string) error
}

var _ PolicyStore = (*awsagent.Agent)(nil)

type Updater struct {
	store  PolicyStore
	merger *policymerger.Merger
	dryRun bool
}

type Option func(*Updater)

// WithDryRun makes the updater log merged policies instead of writing them.
func WithDryRun(dryRun bool) Option {
	return func(u *Updater) {
		u.dryRun = dryRun
	}
}

func NewUpdater(store PolicyStore, merger *policymerger.Merger, opts ...Option) *Updater {
	u := &Updater{store: store, merger: merger}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// UpdateRepositories grants accounts and the service principal pull access on every repository,
// one at a time. The first failure stops the run; repositories after it are left untouched.
func (u *Updater) UpdateRepositories(ctx context.Context, repositories []string, accounts []string) error {
	if duplicates := lo.FindDuplicates(accounts); len(duplicates) != 0 {
		logrus.WithField("accounts", duplicates).Warn("duplicate account ids given, each is granted once")
	}

	for i, repository := range repositories {
		if err := u.UpdateRepository(ctx, repository, accounts); err != nil {
			prometheus.IncrementRepositoryPoliciesFailed(1)
			logrus.WithField("remaining", len(repositories)-i-1).Error("aborting, remaining repositories were not updated")
			return errors.Wrap(err)
		}
	}

	logrus.WithField("count", len(repositories)).Info("Done with all repositories")
	return nil
}

func (u *Updater) UpdateRepository(ctx context.Context, repositoryName string, accounts []string) error {
	repository := awsagent.ParseRepositoryReference(repositoryName)
	logger := logrus.WithField("repository", repository.Name).WithField("registryId", repository.RegistryID).WithField("region", repository.Region)

	logger.Info("Get policy for repository")
	found, policyText, err := u.store.GetRepositoryPolicy(ctx, repository)
	if err != nil {
		if awsagent.IsRepositoryNotFoundException(err) {
			logger.Error("repository does not exist, check the registry and region it was referenced with")
		}
		return errors.Errorf("%w: repository '%s': %w", ErrFetchPolicy, repository, err)
	}
	if !found {
		logger.Info("repository has no policy yet, creating one")
	}

	existing, err := policymerger.ParsePolicyDocument(policyText)
	if err != nil {
		return errors.Errorf("repository '%s': %w", repository, err)
	}

	merged, err := u.merger.MergeDocument(existing, accounts)
	if err != nil {
		return errors.Errorf("repository '%s': %w", repository, err)
	}
	// Two statements are always generated; anything beyond that which is missing was replaced.
	prometheus.IncrementPolicyStatementsDropped(len(existing.Statement) + 2 - len(merged.Statement))

	mergedText, err := merged.JSON()
	if err != nil {
		return errors.Errorf("repository '%s': %w", repository, err)
	}

	if u.dryRun {
		logger.WithField("policy", mergedText).Info("dry run, not updating policy")
		return nil
	}

	logger.WithField("statements", len(merged.Statement)).Info("Update policy for repository")
	if err := u.store.SetRepositoryPolicy(ctx, repository, mergedText); err != nil {
		return errors.Errorf("%w: repository '%s': %w", ErrWritePolicy, repository, err)
	}

	prometheus.IncrementRepositoryPoliciesUpdated(1)
	return nil
}
