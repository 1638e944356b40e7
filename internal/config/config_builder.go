package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
)

// configBuilder layers configuration sources. Every with* step appends one
// source; build merges them in order so later non-zero fields win.
type configBuilder struct {
	configs []*StructuredConfig
	environ map[string]string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for i, source := range b.configs {
		if err := mergo.Merge(merged, source, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging config source %d: %w", i, err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) fail(source string, err error) *configBuilder {
	b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// withEnvironment replaces the process environment read by withEnv.
func (b *configBuilder) withEnvironment(environ map[string]string) *configBuilder {
	b.environ = environ
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, b.environ); err != nil {
		return b.fail("env", err)
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		return b.fail("flags", err)
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withJSON loads the file named by the most recent source that set
// JSONFilePath. Without such a source it does nothing.
func (b *configBuilder) withJSON() *configBuilder {
	for _, source := range slices.Backward(b.configs) {
		if source.JSONFilePath == "" {
			continue
		}

		jsonCfg, err := parseJSON(source.JSONFilePath)
		if err != nil {
			return b.fail("json "+source.JSONFilePath, err)
		}
		b.configs = append(b.configs, jsonCfg)
		return b
	}

	return b
}
