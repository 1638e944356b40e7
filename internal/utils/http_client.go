package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "system-sage"

// HTTPClient embeds a resty client preconfigured for the server's JSON API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that sends every request relative to
// baseURL and accepts JSON. A zero timeout leaves requests unbounded.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
