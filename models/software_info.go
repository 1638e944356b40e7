// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SoftwareInfo describes one installed application found under an
// Uninstall registry root. It is never persisted.
type SoftwareInfo struct {
	DisplayName     string `json:"displayName"`
	DisplayVersion  string `json:"displayVersion"`
	Publisher       string `json:"publisher"`
	InstallLocation string `json:"installLocation"`

	// Category is "Application" or "Component/Driver".
	Category    string `json:"category"`
	// PathStatus tells whether InstallLocation exists: "OK", "OK (File)",
	// "Path Not Found" or "No Path in Registry".
	PathStatus  string `json:"pathStatus"`
	Remarks     string `json:"remarks,omitempty"`
	RegistryKey string `json:"registryKey,omitempty"`

	// PackageURL is the purl of the record, e.g.
	// "pkg:generic/microsoft/7-Zip@23.01".
	PackageURL string `json:"purl,omitempty"`
}

// HostSummary is a short description of the machine the service runs on.
type HostSummary struct {
	Hostname        string `json:"hostname"`
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platformVersion"`
	KernelVersion   string `json:"kernelVersion"`
	KernelArch      string `json:"kernelArch"`
	UptimeSeconds   uint64 `json:"uptimeSeconds"`
	CPUModel        string `json:"cpuModel"`
	CPUCores        int    `json:"cpuCores"`
	MemoryTotal     uint64 `json:"memoryTotalBytes"`
}
