// Package metrics holds the Prometheus collectors of the service.
//
// All collectors are registered on a private registry so that several
// instances can coexist in tests. A nil *Metrics is valid and records
// nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "system_sage"

// Metrics groups the collectors recorded by the HTTP layer and the
// inventory service.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	inventoryScanDuration prometheus.Histogram
	inventoryScanErrors   prometheus.Counter
	installedSoftware     prometheus.Gauge

	auditScanDuration prometheus.Histogram
	auditIssues       *prometheus.GaugeVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a new registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by method, route and status code.",
			},
			[]string{"method", "route", "code"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests by method and route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		inventoryScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "scan_duration_seconds",
			Help:      "Duration of installed software scans.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		inventoryScanErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "scan_errors_total",
			Help:      "Number of installed software scans that returned an error.",
		}),
		installedSoftware: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "installed_software",
			Help:      "Number of installed software records found by the last scan.",
		}),
		auditScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "devenv",
			Name:      "scan_duration_seconds",
			Help:      "Duration of developer environment audits.",
			Buckets:   prometheus.DefBuckets,
		}),
		auditIssues: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "devenv",
				Name:      "issues",
				Help:      "Issues found by the last developer environment audit by severity.",
			},
			[]string{"severity"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.inventoryScanDuration,
		m.inventoryScanErrors,
		m.installedSoftware,
		m.auditScanDuration,
		m.auditIssues,
	)

	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTPRequest records one served request. route is the chi route
// pattern, not the raw path.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveInventoryScan records a finished installed software scan.
func (m *Metrics) ObserveInventoryScan(duration time.Duration, found int, err error) {
	if m == nil {
		return
	}
	m.inventoryScanDuration.Observe(duration.Seconds())
	m.installedSoftware.Set(float64(found))
	if err != nil {
		m.inventoryScanErrors.Inc()
	}
}

// ObserveAudit records a finished developer environment audit.
// issuesBySeverity replaces the previous values.
func (m *Metrics) ObserveAudit(duration time.Duration, issuesBySeverity map[string]int) {
	if m == nil {
		return
	}
	m.auditScanDuration.Observe(duration.Seconds())
	m.auditIssues.Reset()
	for severity, n := range issuesBySeverity {
		m.auditIssues.WithLabelValues(severity).Set(float64(n))
	}
}
