// Package http implements the HTTP transport of the service.
//
// It wires the REST API under /api, the server-rendered pages and the
// Prometheus endpoint. Request tracing, access logging and request metrics
// are handled by middleware before requests reach the service layer.
package http
