// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "scheme kept", raw: "https://sage.lan/", want: "https://sage.lan"},
		{name: "spaces trimmed", raw: "  127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetProfiles(t *testing.T) {
	want := []models.BiosProfile{{ID: 1, Name: "Gaming"}, {ID: 2, Name: "Silent"}}
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/bios-profiles", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(want)
	})

	got, err := a.GetProfiles(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/bios-profiles/7", r.URL.Path)
			w.Write([]byte(`{"id":7,"name":"Silent"}`))
		})

		got, err := a.GetProfile(context.Background(), 7)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Silent", got.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`null`))
		})

		got, err := a.GetProfile(context.Background(), 999)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("invalid id", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid id", http.StatusBadRequest)
		})

		_, err := a.GetProfile(context.Background(), -1)

		assert.ErrorIs(t, err, ErrBadRequest)
		assert.Contains(t, err.Error(), "invalid id")
	})
}

func TestCreateProfile(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got models.BiosProfile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Gaming", got.Name)

		got.ID = 3
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(got)
	})

	created, err := a.CreateProfile(context.Background(), models.BiosProfile{Name: "Gaming"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestUpdateProfile(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/bios-profiles/4", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"name":"Renamed"`)
		w.Write([]byte(`{"id":4,"name":"Renamed"}`))
	})

	updated, err := a.UpdateProfile(context.Background(), 4, models.BiosProfile{Name: "Renamed"})

	require.NoError(t, err)
	assert.Equal(t, models.BiosProfile{ID: 4, Name: "Renamed"}, updated)
}

func TestDeleteProfile(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/bios-profiles/4", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, a.DeleteProfile(context.Background(), 4))
}

func TestGetInstalledSoftware(t *testing.T) {
	t.Run("records", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/system-inventory", r.URL.Path)
			w.Write([]byte(`[{"displayName":"7-Zip","displayVersion":"23.01","publisher":"Igor Pavlov","installLocation":""}]`))
		})

		got, err := a.GetInstalledSoftware(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "7-Zip", got[0].DisplayName)
	})

	t.Run("unsupported platform", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not supported on this platform", http.StatusNotImplemented)
		})

		_, err := a.GetInstalledSoftware(context.Background())

		assert.ErrorIs(t, err, ErrNotImplemented)
	})
}

func TestAuditLists(t *testing.T) {
	tests := []struct {
		name string
		path string
		call func(ServerAdapter) ([]string, error)
	}{
		{name: "components", path: "/api/devenv-audit/components", call: func(a ServerAdapter) ([]string, error) {
			return a.GetDetectedComponents(context.Background())
		}},
		{name: "env vars", path: "/api/devenv-audit/env-vars", call: func(a ServerAdapter) ([]string, error) {
			return a.GetEnvironmentVariables(context.Background())
		}},
		{name: "issues", path: "/api/devenv-audit/issues", call: func(a ServerAdapter) ([]string, error) {
			return a.GetIdentifiedIssues(context.Background())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				w.Write([]byte(`["one","two"]`))
			})

			got, err := tt.call(a)

			require.NoError(t, err)
			assert.Equal(t, []string{"one", "two"}, got)
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("1.4.2"))
	})

	got, err := a.GetServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.2", got)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusNotImplemented, ErrNotImplemented},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusGatewayTimeout, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			err := a.DeleteProfile(context.Background(), 1)

			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unmapped status", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		err := a.DeleteProfile(context.Background(), 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "http 418")
	})
}
