// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
)

// ClientConfig is the configuration of the command line client.
type ClientConfig struct {
	App     App
	Adapter Adapter
}

// GetClientConfig builds the client configuration from built-in defaults and
// ADAPTER_* / APP_* environment variables. Command line flags are applied by
// the caller on top of the returned value. The client logs at warn level
// unless APP_LOG_LEVEL says otherwise.
func GetClientConfig() (*ClientConfig, error) {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, nil); err != nil {
		return nil, err
	}

	merged := defaultConfig()
	merged.App.LogLevel = "warn"
	if err := mergo.Merge(merged, envCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	cfg := &ClientConfig{
		App:     merged.App,
		Adapter: merged.Adapter,
	}

	return cfg, cfg.validate()
}

// Validate re-checks the client configuration after flag overrides.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
