//go:build windows

package inventory

import (
	"context"
	"errors"
	"os"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
)

type registryRoot struct {
	hive registry.Key
	path string
	name string
}

// RegistrySource reads the Uninstall roots through the Windows registry API.
// It applies the same skip rules as [RegQuerySource].
type RegistrySource struct {
	roots  []registryRoot
	logger *logger.Logger
}

// NewRegistrySource returns a source over [UninstallRoots].
func NewRegistrySource(log *logger.Logger) *RegistrySource {
	roots := make([]registryRoot, 0, len(UninstallRoots))
	for _, root := range UninstallRoots {
		hiveName, path, _ := strings.Cut(root, `\`)
		hive := registry.LOCAL_MACHINE
		if hiveName == "HKEY_CURRENT_USER" {
			hive = registry.CURRENT_USER
		}
		roots = append(roots, registryRoot{hive: hive, path: path, name: root})
	}

	return &RegistrySource{roots: roots, logger: log}
}

func (s *RegistrySource) InstalledSoftware(ctx context.Context) ([]models.SoftwareInfo, error) {
	log := logger.FromContext(ctx)

	software := newSoftwareList(os.Stat)

	for _, root := range s.roots {
		if err := ctx.Err(); err != nil {
			return software.sorted(), err
		}

		subkeys, err := enumerateSubkeys(root.hive, root.path)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "RegistrySource.InstalledSoftware").
				Str("root", root.name).
				Msg("registry root read failed, skipping root")
			continue
		}

		for _, subkey := range subkeys {
			if err := ctx.Err(); err != nil {
				return software.sorted(), err
			}

			info, err := softwareInfo(root.hive, root.path+`\`+subkey)
			if err != nil {
				if !errors.Is(err, registry.ErrNotExist) {
					log.Warn().Err(err).
						Str("func", "RegistrySource.InstalledSoftware").
						Str("key", root.name+`\`+subkey).
						Msg("registry key read failed, skipping key")
				}
				continue
			}
			info.RegistryKey = root.name + `\` + subkey
			software.add(info)
		}
	}

	return software.sorted(), nil
}

func enumerateSubkeys(hive registry.Key, path string) ([]string, error) {
	key, err := registry.OpenKey(hive, path, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil, err
	}
	defer key.Close()

	return key.ReadSubKeyNames(0)
}

// softwareInfo returns registry.ErrNotExist when the key has no DisplayName.
func softwareInfo(hive registry.Key, path string) (models.SoftwareInfo, error) {
	key, err := registry.OpenKey(hive, path, registry.QUERY_VALUE)
	if err != nil {
		return models.SoftwareInfo{}, err
	}
	defer key.Close()

	name, _, err := key.GetStringValue("DisplayName")
	if err != nil {
		return models.SoftwareInfo{}, err
	}

	// the remaining values are optional
	version, _, _ := key.GetStringValue("DisplayVersion")
	publisher, _, _ := key.GetStringValue("Publisher")
	location, _, _ := key.GetStringValue("InstallLocation")

	return models.SoftwareInfo{
		DisplayName:     name,
		DisplayVersion:  version,
		Publisher:       publisher,
		InstallLocation: location,
	}, nil
}
