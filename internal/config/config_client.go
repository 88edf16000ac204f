package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the rich-info server
	// (e.g. "http://localhost:8080").
	ServerURL string `env:"SERVER_URL"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration for the terminal client.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// GetClientConfig builds and validates the client configuration from
// environment variables (RICHINFO_ADAPTER_SERVER_URL,
// RICHINFO_ADAPTER_REQUEST_TIMEOUT), applying defaults for unset values.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseClientEnv(cfg); err != nil {
		return nil, fmt.Errorf("error loading client config: %w", err)
	}

	if cfg.Adapter.ServerURL == "" {
		cfg.Adapter.ServerURL = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return cfg, nil
}
