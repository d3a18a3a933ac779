package config

import (
	"fmt"
	"time"
)

// Devserver defaults. The listen port matches the inference collaborator
// default so an unconfigured client finds /predict out of the box; point the
// client's -auth-url at the same address to use the stub auth endpoints too.
const (
	DefaultDevServerAddress = "localhost:8000"
	DefaultTokenIssuer      = "medvision-devserver"
	DefaultTokenDuration    = 24 * time.Hour
)

// DevServerConfig is the configuration view consumed by cmd/devserver.
type DevServerConfig struct {
	// HTTPAddress is the TCP address the devserver listens on.
	HTTPAddress string
	// TokenSignKey signs issued session tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the validity window of issued tokens.
	TokenDuration time.Duration
}

// GetDevServerConfig builds the devserver config view from the merged
// structured configuration, applying defaults for unset values.
func GetDevServerConfig() (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &DevServerConfig{
		HTTPAddress:   cfg.Server.HTTPAddress,
		TokenSignKey:  cfg.App.TokenSignKey,
		TokenIssuer:   cfg.App.TokenIssuer,
		TokenDuration: cfg.App.TokenDuration,
	}
	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = DefaultDevServerAddress
	}
	if serverCfg.TokenSignKey == "" {
		// dev stub only; never used to protect real data
		serverCfg.TokenSignKey = "medvision-dev-sign-key"
	}
	if serverCfg.TokenIssuer == "" {
		serverCfg.TokenIssuer = DefaultTokenIssuer
	}
	if serverCfg.TokenDuration <= 0 {
		serverCfg.TokenDuration = DefaultTokenDuration
	}

	return serverCfg, nil
}
