package awsagent

import (
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/aws/smithy-go"
	"github.com/omics-cicd/release-automation/shared/errors"
)

func isRepositoryPolicyNotFoundException(err error) bool {
	if err == nil {
		return false
	}

	var apiError smithy.APIError
	if !errors.As(err, &apiError) {
		return false
	}

	var policyNotFound *ecrtypes.RepositoryPolicyNotFoundException
	return errors.As(apiError, &policyNotFound)
}

func IsRepositoryNotFoundException(err error) bool {
	if err == nil {
		return false
	}

	var apiError smithy.APIError
	if !errors.As(err, &apiError) {
		return false
	}

	var repositoryNotFound *ecrtypes.RepositoryNotFoundException
	switch {
	case errors.As(apiError, &repositoryNotFound):
		return true
	default:
		return apiError.ErrorCode() == "RepositoryNotFoundException"
	}
}
