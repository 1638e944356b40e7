// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/system-sage/internal/adapter"
	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/logger"
)

// AdapterFactory creates the server adapter once flags have been applied to
// the configuration.
type AdapterFactory func(cfg config.Adapter, logger *logger.Logger) (adapter.ServerAdapter, error)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line given in args and blocks until it ends.
	Run(args []string) error
}
