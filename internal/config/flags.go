package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN (postgres URL or sqlite file)
//	-c/-config json file path with configs
//	-log-level zerolog level name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-metrics expose prometheus metrics
//	-health-interval period of the gRPC health database check
//	-inventory-source installed software source ("reg" or "registry")
//	-reg-command path of the reg executable
//	-command-timeout timeout of a single reg query
//	-audit-catalog YAML tool catalog path
//	-probe-timeout timeout of a single version probe
//	-probe-concurrency number of parallel version probes
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var logLevel string
	var requestTimeout time.Duration
	var metricsEnabled bool
	var healthInterval time.Duration
	var inventorySource string
	var regCommand string
	var commandTimeout time.Duration
	var auditCatalog string
	var probeTimeout time.Duration
	var probeConcurrency int

	fs := flag.NewFlagSet("system-sage", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&metricsEnabled, "metrics", false, "Expose prometheus metrics on /metrics")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Period of the gRPC health database check")
	fs.StringVar(&inventorySource, "inventory-source", "", "Installed software source: reg or registry")
	fs.StringVar(&regCommand, "reg-command", "", "Path of the reg executable")
	fs.DurationVar(&commandTimeout, "command-timeout", 0, "Timeout of a single reg query")
	fs.StringVar(&auditCatalog, "audit-catalog", "", "YAML tool catalog path")
	fs.DurationVar(&probeTimeout, "probe-timeout", 0, "Timeout of a single version probe")
	fs.IntVar(&probeConcurrency, "probe-concurrency", 0, "Number of parallel version probes")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:         serverAddress.String(),
			GRPCAddress:         grpcServerAddress.String(),
			RequestTimeout:      requestTimeout,
			MetricsEnabled:      metricsEnabled,
			HealthCheckInterval: healthInterval,
		},
		Inventory: Inventory{
			Source:         inventorySource,
			RegCommand:     regCommand,
			CommandTimeout: commandTimeout,
		},
		Audit: Audit{
			CatalogFile:      auditCatalog,
			ProbeTimeout:     probeTimeout,
			ProbeConcurrency: probeConcurrency,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the address in host:port form, or "" when nothing was set.
// IPv6 hosts are bracketed.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty (all interfaces), an IP
// literal or a DNS name; the port must be in 1-65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port %q must be a number in range 1-65535", rawPort)
	}

	if host != "" && net.ParseIP(host) == nil && !isHostname(host) {
		return fmt.Errorf("incorrect host %q", host)
	}

	a.Host = host
	a.Port = port
	return nil
}

func isHostname(host string) bool {
	if len(host) > 253 {
		return false
	}
	for label := range strings.SplitSeq(host, ".") {
		if label == "" || len(label) > 63 || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, r := range label {
			if r != '-' && (r < '0' || r > '9') && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
				return false
			}
		}
	}
	return true
}
