package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the builder client transport.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the formkeeper server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level builder-client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// PublicBaseURL is used when composing the shareable form link.
	PublicBaseURL string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		PublicBaseURL: cfg.App.PublicBaseURL,
	}

	if clientCfg.Adapter.HTTPAddress == "" || clientCfg.Adapter.RequestTimeout == 0 {
		return nil, ErrInvalidAdapterConfigs
	}

	return clientCfg, nil
}
