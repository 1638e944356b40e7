package inventory

import (
	"bufio"
	"bytes"
	"context"
	"io/fs"
	"os"
	"strings"

	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
)

// Value type markers of string values in `reg query` output.
var regStringMarkers = []string{"REG_EXPAND_SZ", "REG_SZ"}

// RegQuerySource reads the Uninstall roots by running `reg query`.
//
// A root whose outer query fails is logged and skipped. A subkey whose query
// fails is logged and skipped as well. Cancelling ctx stops the scan; the
// records gathered so far are returned together with the context error.
// Records are deduplicated, classified and sorted by display name.
type RegQuerySource struct {
	runner  CommandRunner
	command string
	roots   []string
	stat    func(string) (fs.FileInfo, error)
	logger  *logger.Logger
}

// NewRegQuerySource returns a source that runs command (normally "reg")
// through runner against [UninstallRoots].
func NewRegQuerySource(runner CommandRunner, command string, log *logger.Logger) *RegQuerySource {
	if command == "" {
		command = "reg"
	}
	return &RegQuerySource{
		runner:  runner,
		command: command,
		roots:   UninstallRoots,
		stat:    os.Stat,
		logger:  log,
	}
}

func (s *RegQuerySource) InstalledSoftware(ctx context.Context) ([]models.SoftwareInfo, error) {
	log := logger.FromContext(ctx)

	software := newSoftwareList(s.stat)

	for _, root := range s.roots {
		if err := ctx.Err(); err != nil {
			return software.sorted(), err
		}

		out, err := s.runner.Run(ctx, s.command, "query", root)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "RegQuerySource.InstalledSoftware").
				Str("root", root).
				Msg("registry root query failed, skipping root")
			continue
		}

		for _, subkey := range ParseSubkeys(out, root) {
			if err := ctx.Err(); err != nil {
				return software.sorted(), err
			}

			keyOut, err := s.runner.Run(ctx, s.command, "query", subkey)
			if err != nil {
				log.Warn().Err(err).
					Str("func", "RegQuerySource.InstalledSoftware").
					Str("key", subkey).
					Msg("registry key query failed, skipping key")
				continue
			}

			info, ok := ParseSoftwareInfo(keyOut)
			if !ok {
				continue
			}
			info.RegistryKey = subkey
			software.add(info)
		}
	}

	records := software.sorted()
	log.Debug().
		Str("func", "RegQuerySource.InstalledSoftware").
		Int("count", len(records)).
		Msg("installed software collected")

	return records, nil
}

// ParseSubkeys returns the subkey lines of a `reg query <root>` listing: the
// trimmed lines that contain root, except the line naming root itself.
func ParseSubkeys(output []byte, root string) []string {
	var subkeys []string

	sc := bufio.NewScanner(bytes.NewReader(output))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.Contains(line, root) || strings.EqualFold(line, root) {
			continue
		}
		subkeys = append(subkeys, line)
	}

	return subkeys
}

// ParseSoftwareInfo extracts the four known values from the output of
// `reg query <subkey>`. Each line is matched against DisplayName,
// DisplayVersion, Publisher and InstallLocation in that order and the first
// match wins. ok is false when no display name was found.
func ParseSoftwareInfo(output []byte) (info models.SoftwareInfo, ok bool) {
	var hasName bool

	sc := bufio.NewScanner(bytes.NewReader(output))
	for sc.Scan() {
		name, value, found := ParseRegValueLine(sc.Text())
		if !found {
			continue
		}

		switch {
		case strings.Contains(name, "DisplayName"):
			info.DisplayName = value
			hasName = true
		case strings.Contains(name, "DisplayVersion"):
			info.DisplayVersion = value
		case strings.Contains(name, "Publisher"):
			info.Publisher = value
		case strings.Contains(name, "InstallLocation"):
			info.InstallLocation = value
		}
	}

	return info, hasName
}

// ParseRegValueLine splits a `reg query` value line such as
//
//	"    DisplayName    REG_SZ    7-Zip 23.01 (x64)"
//
// into the value name and the trimmed remainder after the type marker. The
// marker that occurs first in the line is used, so a value containing a
// marker name is kept intact. found is false for lines without a string type
// marker.
func ParseRegValueLine(line string) (name, value string, found bool) {
	idx, marker := -1, ""
	for _, m := range regStringMarkers {
		i := strings.Index(line, m)
		if i < 0 {
			continue
		}
		// REG_SZ never matches inside REG_EXPAND_SZ, so ties cannot happen
		if idx < 0 || i < idx {
			idx, marker = i, m
		}
	}
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(marker):]), true
}
