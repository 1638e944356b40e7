package inventory

import (
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/MKhiriev/system-sage/models"
)

// Categories of installed software.
const (
	CategoryApplication = "Application"
	CategoryComponent   = "Component/Driver"
)

// Install location states.
const (
	PathStatusOK       = "OK"
	PathStatusFile     = "OK (File)"
	PathStatusNotFound = "Path Not Found"
	PathStatusNoPath   = "No Path in Registry"
)

// ComponentKeywords mark a record as a component or driver when found in its
// lowercased display name or publisher.
var ComponentKeywords = []string{
	"driver", "sdk", "runtime", "redistributable", "pack", "update for",
	"component", "service", "host", "framework", "module", "tool",
	"package", "library", "interface", "provider", "kit", "utility",
	"microsoft .net", "visual c++", "windows sdk", "directx", "vulkan",
}

// IsLikelyComponent reports whether a record looks like a runtime, driver or
// update rather than a user-facing application.
func IsLikelyComponent(name, publisher string) bool {
	name = strings.ToLower(name)
	publisher = strings.ToLower(publisher)

	for _, kw := range ComponentKeywords {
		if strings.Contains(name, kw) || strings.Contains(publisher, kw) {
			return true
		}
	}
	return strings.HasPrefix(name, "{") || strings.HasPrefix(name, "kb")
}

// CleanInstallLocation trims the location and strips one pair of matching
// surrounding quotes.
func CleanInstallLocation(location string) string {
	location = strings.TrimSpace(location)
	if len(location) >= 2 {
		first, last := location[0], location[len(location)-1]
		if first == last && (first == '"' || first == '\'') {
			return location[1 : len(location)-1]
		}
	}
	return location
}

// InstallPathStatus classifies a cleaned install location using stat. The
// remark is empty unless the location needs attention.
func InstallPathStatus(location string, stat func(string) (fs.FileInfo, error)) (status, remark string) {
	if location == "" {
		return PathStatusNoPath, ""
	}

	fi, err := stat(location)
	switch {
	case err != nil:
		return PathStatusNotFound, "Broken install path"
	case fi.IsDir():
		return PathStatusOK, ""
	default:
		return PathStatusFile, "InstallLocation is a file"
	}
}

type softwareKey struct {
	name    string
	version string
}

// softwareList collects the records of one scan. Records whose display name
// starts with "{" are dropped and the first record of a (name, version) pair
// wins.
type softwareList struct {
	stat    func(string) (fs.FileInfo, error)
	seen    map[softwareKey]struct{}
	records []models.SoftwareInfo
}

func newSoftwareList(stat func(string) (fs.FileInfo, error)) *softwareList {
	if stat == nil {
		stat = os.Stat
	}
	return &softwareList{
		stat:    stat,
		seen:    make(map[softwareKey]struct{}),
		records: make([]models.SoftwareInfo, 0, 128),
	}
}

func (l *softwareList) add(info models.SoftwareInfo) bool {
	if info.DisplayName == "" || strings.HasPrefix(info.DisplayName, "{") {
		return false
	}

	key := softwareKey{name: info.DisplayName, version: info.DisplayVersion}
	if _, dup := l.seen[key]; dup {
		return false
	}
	l.seen[key] = struct{}{}

	info.InstallLocation = CleanInstallLocation(info.InstallLocation)
	info.PathStatus, info.Remarks = InstallPathStatus(info.InstallLocation, l.stat)
	info.Category = CategoryApplication
	if IsLikelyComponent(info.DisplayName, info.Publisher) {
		info.Category = CategoryComponent
	}
	info.PackageURL = PackageURL(info.DisplayName, info.DisplayVersion)

	l.records = append(l.records, info)
	return true
}

// sorted returns the records ordered by display name, ignoring case.
func (l *softwareList) sorted() []models.SoftwareInfo {
	slices.SortStableFunc(l.records, func(a, b models.SoftwareInfo) int {
		return strings.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName))
	})
	return l.records
}
