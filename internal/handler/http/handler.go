package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/internal/metrics"
	"github.com/MKhiriev/system-sage/internal/service"
	"github.com/MKhiriev/system-sage/internal/utils"
)

type Handler struct {
	services   *service.Services
	cfg        config.Server
	metrics    *metrics.Metrics
	pages      *pages
	newTraceID func() string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) (*Handler, error) {
	p, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("error parsing page templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		cfg:        cfg,
		metrics:    m,
		pages:      p,
		newTraceID: utils.NewTraceID,
		logger:     logger,
	}, nil
}

// pathID reads a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, chi.URLParam(r, name))
	}
	return id, nil
}

// writeError logs err and writes the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, funcName, msg string, err error) {
	resp := responseFromError(err)

	logger.FromRequest(r).StatusEvent(resp.status).Err(err).Str("func", funcName).Int("status", resp.status).Msg(msg)

	http.Error(w, resp.message, resp.status)
}
