package devenv

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultVersionRegex extracts a dotted version from probe output.
const DefaultVersionRegex = `([0-9]+\.[0-9]+(?:\.[0-9]+)?)`

var defaultVersionArgs = []string{"--version"}

//go:embed tools.yaml
var builtinCatalog []byte

// Tool is a single catalog entry.
type Tool struct {
	Name         string   `yaml:"name"`
	Category     string   `yaml:"category"`
	Executables  []string `yaml:"executables"`
	VersionArgs  []string `yaml:"version_args"`
	VersionRegex string   `yaml:"version_regex"`

	versionPattern *regexp.Regexp
}

// Catalog is the list of tools the scanner looks for.
type Catalog struct {
	Tools []Tool `yaml:"tools"`
}

// LoadCatalog reads the catalog at path, or the built-in one when path is
// empty.
func LoadCatalog(path string) (Catalog, error) {
	data := builtinCatalog
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return Catalog{}, fmt.Errorf("%w: %w", ErrReadingCatalog, err)
		}
		data = fileData
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog, fills defaults and compiles the
// version patterns.
func ParseCatalog(data []byte) (Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	for i := range catalog.Tools {
		tool := &catalog.Tools[i]
		if tool.Name == "" {
			return Catalog{}, fmt.Errorf("%w: tool #%d has no name", ErrInvalidCatalog, i+1)
		}
		if len(tool.Executables) == 0 {
			return Catalog{}, fmt.Errorf("%w: tool %q has no executables", ErrInvalidCatalog, tool.Name)
		}
		if tool.Category == "" {
			tool.Category = "Unknown"
		}
		if len(tool.VersionArgs) == 0 {
			tool.VersionArgs = defaultVersionArgs
		}
		if tool.VersionRegex == "" {
			tool.VersionRegex = DefaultVersionRegex
		}

		pattern, err := regexp.Compile("(?im)" + tool.VersionRegex)
		if err != nil {
			return Catalog{}, fmt.Errorf("%w: tool %q: %w", ErrInvalidCatalog, tool.Name, err)
		}
		if pattern.NumSubexp() < 1 {
			return Catalog{}, fmt.Errorf("%w: tool %q: version_regex needs a capture group", ErrInvalidCatalog, tool.Name)
		}
		tool.versionPattern = pattern
	}

	return catalog, nil
}

// ParseVersion returns the first capture group of the tool's version
// pattern in output, or "" when nothing matched.
func (t Tool) ParseVersion(output []byte) string {
	pattern := t.versionPattern
	if pattern == nil {
		pattern = regexp.MustCompile("(?im)" + DefaultVersionRegex)
	}
	match := pattern.FindSubmatch(output)
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(string(match[1]))
}
