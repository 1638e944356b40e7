package devenv

import (
	"sort"
	"strings"

	"github.com/MKhiriev/system-sage/models"
)

// MaskedValue replaces the value of sensitive variables in reports.
const MaskedValue = "********"

// SensitiveNameParts are substrings of variable names whose values are
// never reported.
var SensitiveNameParts = []string{
	"API_KEY",
	"SECRET",
	"TOKEN",
	"PASSWORD",
	"PASSWD",
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
	"GOOGLE_APPLICATION_CREDENTIALS",
}

// IsSensitive reports whether name contains one of [SensitiveNameParts],
// ignoring case.
func IsSensitive(name string) bool {
	upper := strings.ToUpper(name)
	for _, part := range SensitiveNameParts {
		if strings.Contains(upper, part) {
			return true
		}
	}
	return false
}

// envVar is a raw NAME=value pair as found in the environment.
type envVar struct {
	name  string
	value string
}

// parseEnviron splits os.Environ style entries and sorts them by name.
// Entries without a name, like the "=C:" drive entries on Windows, are
// dropped.
func parseEnviron(environ []string) []envVar {
	vars := make([]envVar, 0, len(environ))
	for _, entry := range environ {
		name, value, _ := strings.Cut(entry, "=")
		if name == "" {
			continue
		}
		vars = append(vars, envVar{name: name, value: value})
	}
	sort.SliceStable(vars, func(i, j int) bool {
		return vars[i].name < vars[j].name
	})
	return vars
}

// reportVariables converts raw variables into their reported form.
func reportVariables(vars []envVar) []models.EnvironmentVariable {
	reported := make([]models.EnvironmentVariable, 0, len(vars))
	for _, v := range vars {
		item := models.EnvironmentVariable{Name: v.name, Value: v.value}
		if IsSensitive(v.name) {
			item.Value = MaskedValue
			item.Masked = true
		}
		reported = append(reported, item)
	}
	return reported
}
