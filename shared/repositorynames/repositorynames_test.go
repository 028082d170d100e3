package repositorynames

import (
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const containerPullerReport = `{
  "executionArn": "arn:aws:states:us-east-1:123456789012:execution:omx-container-puller:run-1",
  "status": "SUCCEEDED",
  "output": "[{\"image\": {\"source_uri\": \"quay.io/biocontainers/samtools:1.17\", \"ecr_repository\": \"quay/biocontainers/samtools\"}}, {\"image\": {\"ecr_repository\": \"dockerhub/library/ubuntu\"}}, {\"image\": {\"ecr_repository\": \"quay/biocontainers/samtools\"}}]"
}`

const workflowConfig = `
process {
    withName: 'ALIGN' { container = "123456789012.dkr.ecr.us-east-1.amazonaws.com/bwa:0.7.17" }
    withName 'foo' { container = "123456789012.dkr.ecr.us-east-1.amazonaws.com/my-repo:1.0" }
    withName 'bar' { container = '123456789012.dkr.ecr.us-east-1.amazonaws.com/my-repo:2.0' }
    withName 'baz' { cpus = 4 }
    // withName 'commented' { container = "ignored" }
    container = "not-a-selector:latest"
}
`

func TestFromExecutionReport_DeduplicatesAndSorts(t *testing.T) {
	names, err := FromExecutionReport(strings.NewReader(containerPullerReport))
	require.NoError(t, err)
	require.Equal(t, []string{"dockerhub/library/ubuntu", "quay/biocontainers/samtools"}, names)
}

func TestFromExecutionReport_Errors(t *testing.T) {
	cases := map[string]string{
		"not json":            `{`,
		"no output":           `{"status": "FAILED"}`,
		"output not a list":   `{"output": "{\"image\": {}}"}`,
		"missing repository":  `{"output": "[{\"image\": {\"source_uri\": \"x\"}}]"}`,
		"missing image field": `{"output": "[{}]"}`,
	}

	for name, report := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromExecutionReport(strings.NewReader(report))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrParse))
		})
	}
}

func TestFromWorkflowConfig_ExtractsRepositoriesWithoutTags(t *testing.T) {
	names, err := FromWorkflowConfig(strings.NewReader(workflowConfig))
	require.NoError(t, err)
	require.Equal(t, []string{
		"123456789012.dkr.ecr.us-east-1.amazonaws.com/bwa",
		"123456789012.dkr.ecr.us-east-1.amazonaws.com/my-repo",
	}, names)
}

func TestFromWorkflowConfig_SingleSelector(t *testing.T) {
	line := `withName 'foo' { container = "123456789012.dkr.ecr.us-east-1.amazonaws.com/my-repo:1.0" }`

	names, err := FromWorkflowConfig(strings.NewReader(line))
	require.NoError(t, err)
	require.Equal(t, []string{"123456789012.dkr.ecr.us-east-1.amazonaws.com/my-repo"}, names)
}

func TestStripTag(t *testing.T) {
	require.Equal(t, "my-repo", StripTag("my-repo:1.0"))
	require.Equal(t, "my-repo", StripTag("my-repo"))
	require.Equal(t, "localhost:5000/my-repo", StripTag("localhost:5000/my-repo"))
	require.Equal(t, "localhost:5000/my-repo", StripTag("localhost:5000/my-repo:latest"))
	require.Equal(t, "my-repo", StripTag("my-repo@sha256:abcdef"))
}

func TestFromFile_DispatchesOnFormat(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "report.json")
	configPath := filepath.Join(dir, "containers.config")
	require.NoError(t, os.WriteFile(reportPath, []byte(containerPullerReport), 0o600))
	require.NoError(t, os.WriteFile(configPath, []byte(workflowConfig), 0o600))

	fromReport, err := FromFile(reportPath, FormatExecutionReport)
	require.NoError(t, err)
	require.Len(t, fromReport, 2)

	fromConfig, err := FromFile(configPath, FormatWorkflowConfig)
	require.NoError(t, err)
	require.Len(t, fromConfig, 2)

	_, err = FromFile(reportPath, Format("yaml"))
	require.Error(t, err)

	_, err = FromFile(filepath.Join(dir, "missing.json"), FormatExecutionReport)
	require.Error(t, err)
}
