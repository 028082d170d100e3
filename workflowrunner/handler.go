package workflowrunner

import (
	"context"
	"encoding/json"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/omics-cicd/release-automation/prometheus"
	"github.com/omics-cicd/release-automation/shared/awsagent"
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/sirupsen/logrus"
	"strings"
)

var (
	ErrParse                = errors.NewSentinelError("failed to parse workflow run request")
	ErrDownstreamInvocation = errors.NewSentinelError("failed to start workflow run")
)

// RunRequest is the invocation payload. The parameters file is either WorkflowParamsS3File or
// WorkflowStagingS3/CommitId/WorkflowParamsFile.
type RunRequest struct {
	WorkflowID           string `json:"WorkflowId"`
	JobRoleARN           string `json:"JobRoleArn"`
	OutputS3Path         string `json:"OutputS3Path"`
	WorkflowParamsS3File string `json:"WorkflowParamsS3File,omitempty"`
	WorkflowStagingS3    string `json:"WorkflowStagingS3,omitempty"`
	CommitID             string `json:"CommitId,omitempty"`
	WorkflowParamsFile   string `json:"WorkflowParamsFile,omitempty"`
}

type RunResponse struct {
	WorkflowRunID string `json:"WorkflowRunId"`
}

type RunStarter interface {
	GetObject(ctx context.Context, location awsagent.S3Location) ([]byte, error)
	StartRun(ctx context.Context, run awsagent.WorkflowRun) (string, error)
}

var _ RunStarter = (*awsagent.Agent)(nil)

type Handler struct {
	starter RunStarter
	runName string
}

func NewHandler(starter RunStarter, runName string) *Handler {
	return &Handler{starter: starter, runName: runName}
}

// ParamsFileURI returns the s3:// location of the run parameters named by the request.
func (r RunRequest) ParamsFileURI() (string, error) {
	if r.WorkflowParamsS3File != "" {
		return r.WorkflowParamsS3File, nil
	}

	if r.WorkflowStagingS3 == "" || r.CommitID == "" || r.WorkflowParamsFile == "" {
		return "", errors.Errorf("%w: either WorkflowParamsS3File or all of WorkflowStagingS3, CommitId and WorkflowParamsFile are required", ErrParse)
	}

	return strings.Join([]string{
		strings.TrimSuffix(r.WorkflowStagingS3, "/"),
		strings.Trim(r.CommitID, "/"),
		strings.TrimPrefix(r.WorkflowParamsFile, "/"),
	}, "/"), nil
}

func (r RunRequest) validate() error {
	missing := make([]string, 0)
	if r.WorkflowID == "" {
		missing = append(missing, "WorkflowId")
	}
	if r.JobRoleARN == "" {
		missing = append(missing, "JobRoleArn")
	}
	if r.OutputS3Path == "" {
		missing = append(missing, "OutputS3Path")
	}
	if len(missing) != 0 {
		return errors.Errorf("%w: missing %s", ErrParse, strings.Join(missing, ", "))
	}
	return nil
}

func (h *Handler) loadParameters(ctx context.Context, request RunRequest) (map[string]any, error) {
	uri, err := request.ParamsFileURI()
	if err != nil {
		return nil, errors.Wrap(err)
	}

	location, err := awsagent.ParseS3URI(uri)
	if err != nil {
		return nil, errors.Errorf("%w: %w", ErrParse, err)
	}

	data, err := h.starter.GetObject(ctx, location)
	if err != nil {
		prometheus.IncrementDownstreamInvocationsFailed("s3")
		return nil, errors.Errorf("%w: %w", ErrDownstreamInvocation, err)
	}

	var parameters map[string]any
	if err := json.Unmarshal(data, &parameters); err != nil {
		return nil, errors.Errorf("%w: parameters file %s: %w", ErrParse, location, err)
	}
	if parameters == nil {
		return nil, errors.Errorf("%w: parameters file %s must hold a JSON object", ErrParse, location)
	}

	return parameters, nil
}

// runRequestID is the idempotency token for StartRun. Lambda keeps the invocation's request id
// across retries of an asynchronous invocation, so a retry cannot start a second run.
func runRequestID(ctx context.Context) string {
	if lambdaContext, ok := lambdacontext.FromContext(ctx); ok && lambdaContext.AwsRequestID != "" {
		return lambdaContext.AwsRequestID
	}
	return uuid.NewString()
}

func (h *Handler) Handle(ctx context.Context, request RunRequest) (RunResponse, error) {
	if err := request.validate(); err != nil {
		return RunResponse{}, errors.Wrap(err)
	}

	logger := logrus.WithField("workflowId", request.WorkflowID)
	parameters, err := h.loadParameters(ctx, request)
	if err != nil {
		return RunResponse{}, errors.Wrap(err)
	}

	run := awsagent.WorkflowRun{
		WorkflowID: request.WorkflowID,
		RoleARN:    request.JobRoleARN,
		Name:       h.runName,
		OutputURI:  request.OutputS3Path,
		Parameters: parameters,
		RequestID:  runRequestID(ctx),
	}
	logger.WithField("requestId", run.RequestID).WithField("outputUri", run.OutputURI).Info("Attempt to start workflow run")

	runID, err := h.starter.StartRun(ctx, run)
	if err != nil {
		prometheus.IncrementDownstreamInvocationsFailed("omics")
		return RunResponse{}, errors.Errorf("%w: workflow '%s': %w", ErrDownstreamInvocation, request.WorkflowID, err)
	}

	prometheus.IncrementWorkflowRunsStarted(1)
	logger.WithField("workflowRunId", runID).Info("Workflow run started")
	return RunResponse{WorkflowRunID: runID}, nil
}
