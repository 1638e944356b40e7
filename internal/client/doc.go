// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements sysagectl, the command line client of the
// system-sage server. Every command prints its result as JSON on stdout.
package client
