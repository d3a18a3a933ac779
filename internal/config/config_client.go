package config

import (
	"fmt"
	"time"
)

// Defaults applied by the client and devserver config views when neither
// flags, env, nor the JSON file provide a value. The collaborator ports
// match the services the client was built against: auth on 5000, inference
// on 8000.
const (
	DefaultDSN            = "medvision.db"
	DefaultAuthURL        = "http://localhost:5000"
	DefaultInferenceURL   = "http://localhost:8000"
	DefaultRequestTimeout = 15 * time.Second
)

// ClientAdapter holds network settings used by the client collaborator
// adapters.
type ClientAdapter struct {
	// AuthURL is the base URL of the auth collaborator.
	AuthURL string
	// InferenceURL is the base URL of the inference collaborator.
	InferenceURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path backing the local key-value store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Version is the application version string.
	Version string
	// Adapter contains collaborator addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// SeedDisabled turns off demo-data seeding on first run.
	SeedDisabled bool
}

// GetClientConfig builds a client-specific config view from the merged
// structured configuration, applying defaults for unset values.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Version: cfg.App.Version,
		Adapter: ClientAdapter{
			AuthURL:        cfg.Adapter.AuthURL,
			InferenceURL:   cfg.Adapter.InferenceURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		SeedDisabled: cfg.Seed.Disable,
	}
	clientCfg.applyDefaults()

	return clientCfg, nil
}

func (c *ClientConfig) applyDefaults() {
	if c.Adapter.AuthURL == "" {
		c.Adapter.AuthURL = DefaultAuthURL
	}
	if c.Adapter.InferenceURL == "" {
		c.Adapter.InferenceURL = DefaultInferenceURL
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = DefaultDSN
	}
}
