// Package devenv audits the developer environment of the host the service
// runs on.
//
// A scan has three parts: development tools found on PATH according to a
// YAML tool catalog, the process environment with sensitive values masked,
// and a list of issues detected by simple heuristics over that environment.
package devenv
