package devenv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/system-sage/models"
)

func TestIsSensitive(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"API_KEY", true},
		{"OPENAI_API_KEY", true},
		{"github_token", true},
		{"DB_PASSWORD", true},
		{"MYSQL_PASSWD", true},
		{"CLIENT_SECRET", true},
		{"GOOGLE_APPLICATION_CREDENTIALS", true},
		{"PATH", false},
		{"HOME", false},
		{"TOKENIZER_HOME", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSensitive(tt.name))
		})
	}
}

func TestParseEnviron(t *testing.T) {
	vars := parseEnviron([]string{
		"PATH=/usr/bin",
		"=C:=C:\\Users",
		"EMPTY=",
		"EQ=a=b",
		"HOME=/home/dev",
	})

	assert.Equal(t, []envVar{
		{name: "EMPTY", value: ""},
		{name: "EQ", value: "a=b"},
		{name: "HOME", value: "/home/dev"},
		{name: "PATH", value: "/usr/bin"},
	}, vars)
}

func TestReportVariables_MasksSensitiveValues(t *testing.T) {
	reported := reportVariables([]envVar{
		{name: "AWS_SECRET_ACCESS_KEY", value: "wJalrXUtnFEMI"},
		{name: "HOME", value: "/home/dev"},
	})

	assert.Equal(t, []models.EnvironmentVariable{
		{Name: "AWS_SECRET_ACCESS_KEY", Value: MaskedValue, Masked: true},
		{Name: "HOME", Value: "/home/dev"},
	}, reported)
}
