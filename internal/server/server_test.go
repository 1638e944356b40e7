package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/handler"
	"github.com/MKhiriev/system-sage/internal/handler/grpc"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/internal/service"
)

func TestNewServer_NoTransports(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_HTTPServerSettings(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{}, nil, cfg, nil, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	require.NotNil(t, srv.httpServer)
	assert.Nil(t, srv.gRPCServer)
	assert.Equal(t, readHeaderTimeout, srv.httpServer.server.ReadHeaderTimeout)
	assert.Equal(t, "127.0.0.1:0", srv.httpServer.server.Addr)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{}, nil, cfg, nil, logger.Nop())
	require.NoError(t, err)
	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:-1"}
	handlers, err := handler.NewHandlers(&service.Services{}, nil, cfg, nil, logger.Nop())
	require.NoError(t, err)
	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("Run did not return after listen failure")
	}
}

func TestHTTPServer_ShutdownStopsServing(t *testing.T) {
	h := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	ts := httptest.NewUnstartedServer(h.server.Handler)
	ts.Config = h.server
	ts.Start()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	done := make(chan struct{})
	go func() {
		h.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		t.Fatal("Shutdown did not return")
	}

	_, err = http.Get(ts.URL)
	assert.Error(t, err)
}

func TestGRPCServer_ShutdownWithoutRun(t *testing.T) {
	g := newGRPCServer(grpc.NewHandler(nil, time.Second, logger.Nop()), config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())

	assert.NotPanics(t, g.Shutdown)
	assert.ErrorIs(t, g.watchCtx.Err(), context.Canceled)
}
