package inventory

import "github.com/package-url/packageurl-go"

// PackageURL returns the generic purl of a Windows package, for example
// "pkg:generic/microsoft/7-Zip@23.01". An empty name yields "".
func PackageURL(name, version string) string {
	if name == "" {
		return ""
	}
	return packageurl.NewPackageURL(packageurl.TypeGeneric, "microsoft", name, version, nil, "").ToString()
}
