package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// medvision client and devserver. It aggregates all sub-configurations and
// is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the devserver token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the client's local persistence
	// backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the base URLs and timeout for the external auth and
	// inference collaborators.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds network settings for the devserver.
	Server Server `envPrefix:"SERVER_"`

	// Seed holds demo-data seeding settings for the client.
	Seed Seed `envPrefix:"SEED_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey is the secret used by the devserver to sign session
	// tokens. The client never inspects tokens, only stores them.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in devserver-issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a devserver token remains valid
	// (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the client persistence settings.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the client's local SQLite store.
type DB struct {
	// DSN is the SQLite file path backing the local key-value store
	// (e.g. "medvision.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for the outbound collaborator clients.
type Adapter struct {
	// AuthURL is the base URL of the auth collaborator
	// (e.g. "http://localhost:5000").
	// Env: ADAPTER_AUTH_URL
	AuthURL string `env:"AUTH_URL"`

	// InferenceURL is the base URL of the inference collaborator
	// (e.g. "http://localhost:8000").
	// Env: ADAPTER_INFERENCE_URL
	InferenceURL string `env:"INFERENCE_URL"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network settings for the devserver's inbound HTTP listener.
type Server struct {
	// HTTPAddress is the TCP address the devserver listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Seed holds demo-data seeding settings.
type Seed struct {
	// Disable turns off synthetic sample-scan seeding on first run.
	// Env: SEED_DISABLE
	Disable bool `env:"DISABLE"`
}

// GetStructuredConfig assembles the merged configuration from flags,
// environment variables, and the optional JSON file. Later sources never
// override values already set by earlier ones (flags win over env, env over
// JSON), matching mergo's no-override merge.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}
