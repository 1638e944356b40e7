// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Issue severities reported by the environment audit.
const (
	SeverityInfo    = "Info"
	SeverityWarning = "Warning"
	SeverityError   = "Error"
)

// AuditReport is the result of a single developer-environment scan.
type AuditReport struct {
	Components           []DetectedComponent   `json:"components"`
	EnvironmentVariables []EnvironmentVariable `json:"environmentVariables"`
	Issues               []ScanIssue           `json:"issues"`
}

// DetectedComponent is a development tool found on the host.
type DetectedComponent struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Version        string `json:"version"`
	ExecutablePath string `json:"executablePath"`
}

// String renders the component the way the audit lists expose it.
func (c DetectedComponent) String() string {
	return fmt.Sprintf("%s %s (%s) [%s]", c.Name, c.Version, c.ExecutablePath, c.Category)
}

// EnvironmentVariable is a single variable of the service process
// environment. Value is masked for sensitive names.
type EnvironmentVariable struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Masked bool   `json:"masked"`
}

func (v EnvironmentVariable) String() string {
	return v.Name + "=" + v.Value
}

// ScanIssue is a potential problem found during the scan.
type ScanIssue struct {
	Severity    string `json:"severity"`
	Category    string `json:"category"`
	Description string `json:"description"`
	RelatedPath string `json:"relatedPath,omitempty"`
}

func (i ScanIssue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Category, i.Description)
}
