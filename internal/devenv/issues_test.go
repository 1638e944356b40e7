package devenv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/system-sage/models"
)

func newTestAnalyzer() issueAnalyzer {
	return issueAnalyzer{stat: os.Stat, listSeparator: string(os.PathListSeparator)}
}

func issueKeys(issues []models.ScanIssue) []string {
	keys := make([]string, 0, len(issues))
	for _, issue := range issues {
		keys = append(keys, issue.Severity+"/"+issue.Category)
	}
	return keys
}

func TestIssueAnalyzer_Value(t *testing.T) {
	a := newTestAnalyzer()

	assert.Empty(t, a.analyzeVariable("EDITOR", "vim"))
	assert.Equal(t, []string{"Info/Value"}, issueKeys(a.analyzeVariable("EDITOR", "   ")))
	assert.Equal(t, []string{"Warning/Length"}, issueKeys(a.analyzeVariable("EDITOR", strings.Repeat("x", 256))))
	assert.Empty(t, a.analyzeVariable("EDITOR", strings.Repeat("x", 255)))
}

func TestIssueAnalyzer_Format(t *testing.T) {
	a := newTestAnalyzer()

	assert.Equal(t, []string{"Warning/Format"}, issueKeys(a.analyzeVariable("Editor", "vim")))
	assert.Equal(t, []string{"Warning/Format"}, issueKeys(a.analyzeVariable("MY-VAR", "1")))
	assert.Empty(t, a.analyzeVariable("MY_VAR_2", "1"))
}

func TestIssueAnalyzer_PathEntries(t *testing.T) {
	a := newTestAnalyzer()

	dir := t.TempDir()
	file := filepath.Join(dir, "tool.exe")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	missing := filepath.Join(dir, "missing")

	value := strings.Join([]string{dir, "", file, missing}, string(os.PathListSeparator))
	issues := a.analyzeVariable("PATH", value)

	require.Len(t, issues, 2)
	assert.Equal(t, models.ScanIssue{
		Severity:    models.SeverityInfo,
		Category:    CategoryConfiguration,
		Description: "Path '" + file + "' in environment variable 'PATH' exists but is not a directory.",
		RelatedPath: file,
	}, issues[0])
	assert.Equal(t, models.ScanIssue{
		Severity:    models.SeverityWarning,
		Category:    CategoryPathing,
		Description: "Path '" + missing + "' in environment variable 'PATH' does not exist.",
		RelatedPath: missing,
	}, issues[1])

	// any variable with "path" in the name is treated as a path list
	assert.Equal(t, []string{"Warning/Pathing"}, issueKeys(a.analyzeVariable("PYTHONPATH", missing)))
}

func TestIssueAnalyzer_JavaHome(t *testing.T) {
	a := newTestAnalyzer()

	jdk := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(jdk, "bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(jdk, "bin", "java"), []byte("x"), 0o600))

	assert.Empty(t, a.analyzeVariable("JAVA_HOME", jdk))
	assert.Equal(t, []string{"Warning/Configuration"}, issueKeys(a.analyzeVariable("JAVA_HOME", t.TempDir())))
}

func TestIssueAnalyzer_Sensitive(t *testing.T) {
	a := newTestAnalyzer()

	assert.Equal(t, []string{"Warning/Security"}, issueKeys(a.analyzeVariable("GITHUB_TOKEN", "ghp_x")))
	assert.Equal(t, []string{"Info/Value", "Warning/Security"}, issueKeys(a.analyzeVariable("DB_PASSWORD", "")))
}

func TestIssueAnalyzer_Analyze_OrderFollowsVariables(t *testing.T) {
	a := newTestAnalyzer()

	issues := a.analyze(parseEnviron([]string{"b=1", "API_KEY=k", "EMPTY="}))
	assert.Equal(t, []string{"Warning/Security", "Info/Value", "Warning/Format"}, issueKeys(issues))
}
