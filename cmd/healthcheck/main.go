// Command healthcheck probes the /healthz route of a running auth service
// and exits non-zero when it is not healthy. It is meant for container
// HEALTHCHECK instructions, where no curl binary is available.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/adapter"
	"github.com/MKhiriev/go-session-auth/internal/logger"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of the auth service")
	timeout := flag.Duration("timeout", 3*time.Second, "request timeout")
	flag.Parse()

	log := logger.NewLogger("go-session-auth-healthcheck")

	client, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *baseURL,
		Timeout: *timeout,
	}, log)
	if err != nil {
		log.Error().Err(err).Msg("invalid healthcheck configuration")
		os.Exit(2)
	}

	if err := client.Health(context.Background()); err != nil {
		log.Error().Err(err).Str("url", *baseURL).Msg("service is unhealthy")
		os.Exit(1)
	}

	log.Debug().Msg("service is healthy")
}
