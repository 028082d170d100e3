package releasetrigger

import (
	"context"
	"github.com/aws/aws-lambda-go/events"
	"github.com/omics-cicd/release-automation/prometheus"
	"github.com/omics-cicd/release-automation/shared/awsagent"
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/sirupsen/logrus"
	"net/url"
	"strings"
)

var (
	ErrParse                = errors.NewSentinelError("failed to parse release artifact event")
	ErrDownstreamInvocation = errors.NewSentinelError("failed to start release build")
)

const (
	LaunchedMessage = "Healthomics workflow release launched!"

	// Artifact keys look like <prefix>/<prefix>/<workflow>/<branch>/<version>/...
	workflowNameSegment    = 2
	projectBranchSegment   = 3
	workflowVersionSegment = 4
	minKeySegments         = workflowVersionSegment + 1
)

// BuildStarter is the part of awsagent.Agent the handler needs.
type BuildStarter interface {
	StartBuild(ctx context.Context, projectName string, variables []awsagent.BuildVariable) (string, error)
}

var _ BuildStarter = (*awsagent.Agent)(nil)

type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
	BuildID    string `json:"buildId"`
}

// ReleaseArtifact is what an artifact's object key says about the release it belongs to.
type ReleaseArtifact struct {
	Bucket          string
	Key             string
	WorkflowName    string
	ProjectBranch   string
	WorkflowVersion string
}

type Handler struct {
	builder       BuildStarter
	projectName   string
	cicdAccountID string
}

func NewHandler(builder BuildStarter, projectName string, cicdAccountID string) *Handler {
	return &Handler{builder: builder, projectName: projectName, cicdAccountID: cicdAccountID}
}

// ParseArtifact reads the release coordinates from the first record of event. Object keys in S3
// notifications are URL encoded, with spaces as '+'.
func ParseArtifact(event events.S3Event) (ReleaseArtifact, error) {
	if len(event.Records) == 0 {
		return ReleaseArtifact{}, errors.Errorf("%w: event has no records", ErrParse)
	}

	record := event.Records[0].S3
	key, err := url.QueryUnescape(record.Object.Key)
	if err != nil {
		return ReleaseArtifact{}, errors.Errorf("%w: object key '%s': %w", ErrParse, record.Object.Key, err)
	}
	if record.Bucket.Name == "" {
		return ReleaseArtifact{}, errors.Errorf("%w: record has no bucket name", ErrParse)
	}

	segments := strings.Split(key, "/")
	if len(segments) < minKeySegments {
		return ReleaseArtifact{}, errors.Errorf("%w: object key '%s' has %d path segments, expected at least %d", ErrParse, key, len(segments), minKeySegments)
	}

	return ReleaseArtifact{
		Bucket:          record.Bucket.Name,
		Key:             key,
		WorkflowName:    segments[workflowNameSegment],
		ProjectBranch:   segments[projectBranchSegment],
		WorkflowVersion: segments[workflowVersionSegment],
	}, nil
}

func (h *Handler) buildVariables(artifact ReleaseArtifact) []awsagent.BuildVariable {
	return []awsagent.BuildVariable{
		{Name: "artifactBucket", Value: artifact.Bucket},
		{Name: "artifactKey", Value: artifact.Key},
		{Name: "cicdACCOUNT", Value: h.cicdAccountID},
		{Name: "workflowName", Value: artifact.WorkflowName},
		{Name: "projectBranch", Value: artifact.ProjectBranch},
		{Name: "workflowVersion", Value: artifact.WorkflowVersion},
	}
}

func (h *Handler) Handle(ctx context.Context, event events.S3Event) (Response, error) {
	artifact, err := ParseArtifact(event)
	if err != nil {
		return Response{}, errors.Wrap(err)
	}

	logger := logrus.WithField("bucket", artifact.Bucket).WithField("key", artifact.Key)
	logger.WithField("workflowName", artifact.WorkflowName).
		WithField("projectBranch", artifact.ProjectBranch).
		WithField("workflowVersion", artifact.WorkflowVersion).
		WithField("project", h.projectName).
		Info("Launching release build")

	buildID, err := h.builder.StartBuild(ctx, h.projectName, h.buildVariables(artifact))
	if err != nil {
		prometheus.IncrementDownstreamInvocationsFailed("codebuild")
		return Response{}, errors.Errorf("%w: project '%s': %w", ErrDownstreamInvocation, h.projectName, err)
	}

	prometheus.IncrementReleaseBuildsStarted(1)
	logger.WithField("buildId", buildID).Info("Release build started")
	return Response{StatusCode: 200, Body: LaunchedMessage, BuildID: buildID}, nil
}
