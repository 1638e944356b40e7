package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Defaults(t *testing.T) {
	var gotAccept, gotUserAgent, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	resp, err := client.R().Get("/api/version")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, userAgent, gotUserAgent)
	assert.Equal(t, "/api/version", gotPath)
	assert.Equal(t, time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_ZeroTimeout(t *testing.T) {
	client := NewHTTPClient("http://localhost:1", 0)

	assert.Zero(t, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independent(t *testing.T) {
	a := NewHTTPClient("http://a.local", 0)
	b := NewHTTPClient("http://b.local", 0)

	assert.NotSame(t, a.Client, b.Client)
	assert.Equal(t, "http://a.local", a.BaseURL)
	assert.Equal(t, "http://b.local", b.BaseURL)
}
