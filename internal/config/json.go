package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress         string   `json:"http_address"`
		GRPCAddress         string   `json:"grpc_address"`
		RequestTimeout      Duration `json:"request_timeout"`
		MetricsEnabled      bool     `json:"metrics_enabled"`
		HealthCheckInterval Duration `json:"health_check_interval"`
	} `json:"server,omitempty"`

	Inventory struct {
		Source         string   `json:"source"`
		RegCommand     string   `json:"reg_command"`
		CommandTimeout Duration `json:"command_timeout"`
	} `json:"inventory,omitempty"`

	Audit struct {
		CatalogFile      string   `json:"catalog_file"`
		ProbeTimeout     Duration `json:"probe_timeout"`
		ProbeConcurrency int      `json:"probe_concurrency"`
	} `json:"audit,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:         jsonCfg.Server.HTTPAddress,
			GRPCAddress:         jsonCfg.Server.GRPCAddress,
			RequestTimeout:      time.Duration(jsonCfg.Server.RequestTimeout),
			MetricsEnabled:      jsonCfg.Server.MetricsEnabled,
			HealthCheckInterval: time.Duration(jsonCfg.Server.HealthCheckInterval),
		},
		Inventory: Inventory{
			Source:         jsonCfg.Inventory.Source,
			RegCommand:     jsonCfg.Inventory.RegCommand,
			CommandTimeout: time.Duration(jsonCfg.Inventory.CommandTimeout),
		},
		Audit: Audit{
			CatalogFile:      jsonCfg.Audit.CatalogFile,
			ProbeTimeout:     time.Duration(jsonCfg.Audit.ProbeTimeout),
			ProbeConcurrency: jsonCfg.Audit.ProbeConcurrency,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
