// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.MaxOpenConns < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.HealthCheckInterval < 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Inventory.Source {
	case InventorySourceRegQuery:
		if cfg.Inventory.RegCommand == "" {
			return ErrInvalidInventoryConfigs
		}
	case InventorySourceRegistry:
	default:
		return ErrInvalidInventoryConfigs
	}
	if cfg.Inventory.CommandTimeout < 0 {
		return ErrInvalidInventoryConfigs
	}

	if cfg.Audit.ProbeTimeout < 0 || cfg.Audit.ProbeConcurrency < 0 {
		return ErrInvalidAuditConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
