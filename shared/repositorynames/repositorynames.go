// Package repositorynames extracts the ECR repositories a workflow pulls from, either from the
// container puller's execution report or from the workflow's container configuration.
package repositorynames

import (
	"bufio"
	"encoding/json"
	"github.com/amit7itz/goset"
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
)

type Format string

const (
	FormatExecutionReport Format = "report"
	FormatWorkflowConfig  Format = "config"
)

var ErrParse = errors.NewSentinelError("failed to parse repository source")

var containerAssignmentRegex = regexp.MustCompile(`container\s*=\s*['"]([^'"]+)['"]`)

type executionReport struct {
	Output *string `json:"output"`
}

type pulledImage struct {
	Image *struct {
		ECRRepository string `json:"ecr_repository"`
	} `json:"image"`
}

// FromExecutionReport reads a describe-execution report of the container puller state machine.
// Its "output" field is itself a JSON document listing the pulled images. The result is
// deduplicated and sorted.
func FromExecutionReport(reader io.Reader) ([]string, error) {
	var report executionReport
	if err := json.NewDecoder(reader).Decode(&report); err != nil {
		return nil, errors.Errorf("%w: execution report is not valid JSON: %w", ErrParse, err)
	}
	if report.Output == nil {
		return nil, errors.Errorf("%w: execution report has no output", ErrParse)
	}

	var images []pulledImage
	if err := json.Unmarshal([]byte(*report.Output), &images); err != nil {
		return nil, errors.Errorf("%w: execution output is not a list of images: %w", ErrParse, err)
	}

	repositories := goset.NewSet[string]()
	for i, image := range images {
		if image.Image == nil || image.Image.ECRRepository == "" {
			return nil, errors.Errorf("%w: image %d has no ecr_repository", ErrParse, i)
		}
		repositories.Add(image.Image.ECRRepository)
	}

	names := repositories.Items()
	sort.Strings(names)
	return names, nil
}

// FromWorkflowConfig scans a workflow configuration for process selectors of the form
//
//	withName 'foo' { container = "123456789012.dkr.ecr.us-east-1.amazonaws.com/my-repo:1.0" }
//
// and returns the container references without their tags, in first-seen order.
func FromWorkflowConfig(reader io.Reader) ([]string, error) {
	seen := goset.NewSet[string]()
	names := make([]string, 0)

	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "withName") {
			continue
		}

		match := containerAssignmentRegex.FindStringSubmatch(line)
		if match == nil {
			logrus.WithField("line", lineNumber).Debug("withName selector without a container, skipping")
			continue
		}

		name := StripTag(match[1])
		if seen.Contains(name) {
			continue
		}
		seen.Add(name)
		names = append(names, name)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("%w: failed reading workflow config: %w", ErrParse, err)
	}

	return names, nil
}

// StripTag removes a trailing ":tag" from an image reference. A colon before the last "/"
// belongs to a registry port and is kept.
func StripTag(reference string) string {
	reference = strings.SplitN(reference, "@", 2)[0]
	lastSlash := strings.LastIndex(reference, "/")
	lastColon := strings.LastIndex(reference, ":")
	if lastColon > lastSlash {
		return reference[:lastColon]
	}
	return reference
}

func FromFile(path string, format Format) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	defer file.Close()

	switch format {
	case FormatExecutionReport:
		return FromExecutionReport(file)
	case FormatWorkflowConfig:
		return FromWorkflowConfig(file)
	default:
		return nil, errors.Errorf("unknown repository source format '%s'", format)
	}
}
