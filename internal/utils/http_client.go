package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client bound to the
// base URL of a running auth service.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.R().Get("/healthz")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient. A zero timeout leaves
// resty's default (no timeout) in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
