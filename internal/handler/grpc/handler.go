// Package grpc exposes the standard gRPC health service. The serving status
// follows the reachability of the database.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/system-sage/internal/logger"
)

// ServiceName is the health check service name reported next to the
// overall ("") status.
const ServiceName = "system-sage"

const defaultCheckInterval = 15 * time.Second

// Pinger is satisfied by the store connection.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
type Handler struct {
	health   *health.Server
	db       Pinger
	interval time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Until the first Refresh the service
// reports NOT_SERVING.
func NewHandler(db Pinger, interval time.Duration, logger *logger.Logger) *Handler {
	if interval <= 0 {
		interval = defaultCheckInterval
	}

	h := &Handler{
		health:   health.NewServer(),
		db:       db,
		interval: interval,
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Refresh pings the database once and publishes the resulting status.
func (h *Handler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if h.db == nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	} else {
		pingCtx, cancel := context.WithTimeout(ctx, h.interval)
		defer cancel()

		if err := h.db.PingContext(pingCtx); err != nil {
			h.logger.Warn().Err(err).Str("func", "*Handler.Refresh").Msg("database is unreachable")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	h.setStatus(status)
	return status
}

// Watch refreshes the status every interval until ctx is done, then marks
// the service as shutting down.
func (h *Handler) Watch(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.Refresh(ctx)
		}
	}
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
