package handler

import (
	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/handler/grpc"
	"github.com/MKhiriev/system-sage/internal/handler/http"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/internal/metrics"
	"github.com/MKhiriev/system-sage/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every configured transport. db backs the
// gRPC health status.
func NewHandlers(services *service.Services, db grpc.Pinger, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		httpHandler, err := http.NewHandler(services, cfg, m, logger)
		if err != nil {
			return nil, err
		}
		handlers.HTTP = httpHandler
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(db, cfg.HealthCheckInterval, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
