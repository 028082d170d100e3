package awsagent

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/sirupsen/logrus"
	"regexp"
)

var repositoryURIRegex = regexp.MustCompile(`^(\d{12})\.dkr\.ecr(?:-fips)?\.([a-z0-9-]+)\.amazonaws\.com(?:\.cn)?/(.+)$`)

// RepositoryReference identifies an ECR repository. An empty RegistryID means the caller's
// default registry, an empty Region the agent's region.
type RepositoryReference struct {
	RegistryID string
	Region     string
	Name       string
}

// ParseRepositoryReference accepts either a bare repository name or a repository URI such as
// 123456789012.dkr.ecr.us-east-1.amazonaws.com/my-repo.
func ParseRepositoryReference(reference string) RepositoryReference {
	match := repositoryURIRegex.FindStringSubmatch(reference)
	if match == nil {
		return RepositoryReference{Name: reference}
	}
	return RepositoryReference{RegistryID: match[1], Region: match[2], Name: match[3]}
}

func (r RepositoryReference) String() string {
	if r.RegistryID == "" {
		return r.Name
	}
	return r.RegistryID + "/" + r.Name
}

func (r RepositoryReference) registryID() *string {
	if r.RegistryID == "" {
		return nil
	}
	return aws.String(r.RegistryID)
}

// regionOptions sends the call to the repository's region when it is not the agent's own.
func (a *Agent) regionOptions(repository RepositoryReference) []func(*ecr.Options) {
	if repository.Region == "" || repository.Region == a.Region {
		return nil
	}
	return []func(*ecr.Options){
		func(o *ecr.Options) {
			o.Region = repository.Region
		},
	}
}

// GetRepositoryPolicy returns the repository's policy text.
// Return value is:
// - found (bool), false if the repository exists but has no policy
// - policyText (string)
// - error
func (a *Agent) GetRepositoryPolicy(ctx context.Context, repository RepositoryReference) (bool, string, error) {
	logger := logrus.WithField("repository", repository.Name).WithField("registryId", repository.RegistryID).WithField("region", repository.Region)

	output, err := a.ecrClient.GetRepositoryPolicy(ctx, &ecr.GetRepositoryPolicyInput{
		RepositoryName: aws.String(repository.Name),
		RegistryId:     repository.registryID(),
	}, a.regionOptions(repository)...)
	if err != nil {
		if isRepositoryPolicyNotFoundException(err) {
			logger.Debug("repository has no policy")
			return false, "", nil
		}
		return false, "", errors.Wrap(err)
	}

	return true, aws.ToString(output.PolicyText), nil
}

// SetRepositoryPolicy replaces the repository's policy with policyText in a single call.
func (a *Agent) SetRepositoryPolicy(ctx context.Context, repository RepositoryReference, policyText string) error {
	_, err := a.ecrClient.SetRepositoryPolicy(ctx, &ecr.SetRepositoryPolicyInput{
		RepositoryName: aws.String(repository.Name),
		RegistryId:     repository.registryID(),
		PolicyText:     aws.String(policyText),
	}, a.regionOptions(repository)...)
	if err != nil {
		return errors.Wrap(err)
	}

	return nil
}
