package awsagent

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codebuild"
	codebuildtypes "github.com/aws/aws-sdk-go-v2/service/codebuild/types"
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/samber/lo"
)

type BuildVariable struct {
	Name  string
	Value string
}

// StartBuild starts projectName without artifacts, overriding the given plaintext environment
// variables, and returns the build id.
func (a *Agent) StartBuild(ctx context.Context, projectName string, variables []BuildVariable) (string, error) {
	output, err := a.codeBuildClient.StartBuild(ctx, &codebuild.StartBuildInput{
		ProjectName: aws.String(projectName),
		ArtifactsOverride: &codebuildtypes.ProjectArtifacts{
			Type: codebuildtypes.ArtifactsTypeNoArtifacts,
		},
		EnvironmentVariablesOverride: lo.Map(variables, func(variable BuildVariable, _ int) codebuildtypes.EnvironmentVariable {
			return codebuildtypes.EnvironmentVariable{
				Name:  aws.String(variable.Name),
				Value: aws.String(variable.Value),
				Type:  codebuildtypes.EnvironmentVariableTypePlaintext,
			}
		}),
	})
	if err != nil {
		return "", errors.Wrap(err)
	}

	if output.Build == nil {
		return "", errors.Errorf("StartBuild for project '%s' returned no build", projectName)
	}

	return aws.ToString(output.Build.Id), nil
}
