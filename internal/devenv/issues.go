package devenv

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MKhiriev/system-sage/models"
)

// Issue categories.
const (
	CategoryValue         = "Value"
	CategoryLength        = "Length"
	CategoryFormat        = "Format"
	CategoryPathing       = "Pathing"
	CategoryConfiguration = "Configuration"
	CategorySecurity      = "Security"
)

const maxValueLength = 255

var variableNamePattern = regexp.MustCompile(`^[A-Z0-9_]+$`)

// issueAnalyzer applies the environment heuristics. stat is os.Stat outside
// of tests.
type issueAnalyzer struct {
	stat          func(name string) (fs.FileInfo, error)
	listSeparator string
}

func (a issueAnalyzer) analyze(vars []envVar) []models.ScanIssue {
	issues := make([]models.ScanIssue, 0)
	for _, v := range vars {
		issues = append(issues, a.analyzeVariable(v.name, v.value)...)
	}
	return issues
}

func (a issueAnalyzer) analyzeVariable(name, value string) []models.ScanIssue {
	var issues []models.ScanIssue

	if strings.TrimSpace(value) == "" {
		issues = append(issues, models.ScanIssue{
			Severity:    models.SeverityInfo,
			Category:    CategoryValue,
			Description: fmt.Sprintf("Environment variable '%s' is empty or contains only whitespace.", name),
		})
	}

	if len(value) > maxValueLength {
		issues = append(issues, models.ScanIssue{
			Severity:    models.SeverityWarning,
			Category:    CategoryLength,
			Description: fmt.Sprintf("Environment variable '%s' has a very long value (>%d characters).", name, maxValueLength),
		})
	}

	if !variableNamePattern.MatchString(name) {
		issues = append(issues, models.ScanIssue{
			Severity:    models.SeverityWarning,
			Category:    CategoryFormat,
			Description: fmt.Sprintf("Environment variable '%s' contains invalid characters (only A-Z, 0-9, and _ are allowed).", name),
		})
	}

	if strings.Contains(strings.ToLower(name), "path") {
		issues = append(issues, a.analyzePathList(name, value)...)
	}

	if strings.Contains(name, "JAVA_HOME") && !a.exists(filepath.Join(value, "bin", "java.exe")) && !a.exists(filepath.Join(value, "bin", "java")) {
		issues = append(issues, models.ScanIssue{
			Severity:    models.SeverityWarning,
			Category:    CategoryConfiguration,
			Description: fmt.Sprintf("JAVA_HOME ('%s') might not point to a valid JDK/JRE installation (missing bin/java).", value),
		})
	}

	if IsSensitive(name) {
		issues = append(issues, models.ScanIssue{
			Severity:    models.SeverityWarning,
			Category:    CategorySecurity,
			Description: fmt.Sprintf("Environment variable '%s' might contain sensitive data.", name),
		})
	}

	return issues
}

func (a issueAnalyzer) analyzePathList(name, value string) []models.ScanIssue {
	var issues []models.ScanIssue
	for _, entry := range strings.Split(value, a.listSeparator) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		info, err := a.stat(entry)
		switch {
		case err != nil:
			issues = append(issues, models.ScanIssue{
				Severity:    models.SeverityWarning,
				Category:    CategoryPathing,
				Description: fmt.Sprintf("Path '%s' in environment variable '%s' does not exist.", entry, name),
				RelatedPath: entry,
			})
		case !info.IsDir():
			issues = append(issues, models.ScanIssue{
				Severity:    models.SeverityInfo,
				Category:    CategoryConfiguration,
				Description: fmt.Sprintf("Path '%s' in environment variable '%s' exists but is not a directory.", entry, name),
				RelatedPath: entry,
			})
		}
	}
	return issues
}

func (a issueAnalyzer) exists(path string) bool {
	_, err := a.stat(path)
	return err == nil
}
