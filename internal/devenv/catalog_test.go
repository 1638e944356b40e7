package devenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_Builtin(t *testing.T) {
	catalog, err := LoadCatalog("")
	require.NoError(t, err)
	require.NotEmpty(t, catalog.Tools)

	names := make([]string, 0, len(catalog.Tools))
	for _, tool := range catalog.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Executables, tool.Name)
		assert.NotEmpty(t, tool.VersionArgs, tool.Name)
		assert.NotNil(t, tool.versionPattern, tool.Name)
	}
	assert.Contains(t, names, "Git")
	assert.Contains(t, names, "Python")
	assert.Contains(t, names, "Go")
}

func TestLoadCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tools:
  - name: Terraform
    executables: [terraform]
    version_args: [version]
`), 0o600))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog.Tools, 1)

	tool := catalog.Tools[0]
	assert.Equal(t, "Terraform", tool.Name)
	assert.Equal(t, "Unknown", tool.Category)
	assert.Equal(t, []string{"version"}, tool.VersionArgs)
	assert.Equal(t, DefaultVersionRegex, tool.VersionRegex)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrReadingCatalog)
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"broken yaml", "tools: [\n"},
		{"no name", "tools:\n  - executables: [git]\n"},
		{"no executables", "tools:\n  - name: Git\n"},
		{"bad regex", "tools:\n  - name: Git\n    executables: [git]\n    version_regex: '(['\n"},
		{"no capture group", "tools:\n  - name: Git\n    executables: [git]\n    version_regex: 'git'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestTool_ParseVersion(t *testing.T) {
	catalog, err := ParseCatalog([]byte(`
tools:
  - name: Git
    executables: [git]
  - name: Java
    executables: [java]
    version_regex: 'version "([0-9][^"]*)"'
  - name: Go
    executables: [go]
    version_regex: 'go([0-9]+\.[0-9]+(?:\.[0-9]+)?)'
`))
	require.NoError(t, err)
	git, java, golang := catalog.Tools[0], catalog.Tools[1], catalog.Tools[2]

	assert.Equal(t, "2.43.0", git.ParseVersion([]byte("git version 2.43.0.windows.1\n")))
	assert.Equal(t, "17.0.9", java.ParseVersion([]byte("openjdk version \"17.0.9\" 2023-10-17\nOpenJDK Runtime Environment\n")))
	assert.Equal(t, "1.26.0", golang.ParseVersion([]byte("go version go1.26.0 linux/amd64\n")))
	assert.Empty(t, git.ParseVersion([]byte("command not found")))
	assert.Empty(t, git.ParseVersion(nil))
}
