// Package config provides the command-line client configuration through environment
// variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds the command-line client configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// VaultID is the id of the vault the commands target.
	VaultID string
	// VaultClusterID is the cluster id used to build the vault URL.
	VaultClusterID string
	// VaultEnv is the vault environment (DEV, STAGE, SANDBOX or PROD).
	VaultEnv string

	// CredentialsPath is the path of a service account credentials file.
	CredentialsPath string
	// APIKey is a vault api key.
	APIKey string
	// BearerToken is a pre-issued bearer token.
	BearerToken string
	// Roles is a comma-separated list of role ids to scope issued tokens to.
	Roles string
	// Context is the context claim added to issued tokens.
	Context string

	// ConnectionID is the id of the connection invoke-connection targets.
	ConnectionID string
	// ConnectionURL is the https URL of that connection.
	ConnectionURL string

	// HTTPTimeout is the per-attempt HTTP timeout.
	HTTPTimeout time.Duration
	// HTTPRetryMax is the maximum number of retries of a failed call.
	HTTPRetryMax int
	// HTTPRetryWaitMin is the minimum wait between retries.
	HTTPRetryWaitMin time.Duration
	// HTTPRetryWaitMax is the maximum wait between retries.
	HTTPRetryWaitMax time.Duration

	// RateLimitEnabled indicates whether outbound calls are rate limited.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of outbound calls allowed per second.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the outbound rate limiter burst size.
	RateLimitBurst int

	// TokenExpirySkew is how long before expiry a cached bearer token is replaced.
	TokenExpirySkew time.Duration

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the client metrics.
	MetricsNamespace string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Vault
		VaultID:        env.GetString("VAULT_ID", ""),
		VaultClusterID: env.GetString("VAULT_CLUSTER_ID", ""),
		VaultEnv:       env.GetString("VAULT_ENV", "PROD"),

		// Credentials
		CredentialsPath: env.GetString("VAULT_CREDENTIALS_PATH", ""),
		APIKey:          env.GetString("VAULT_API_KEY", ""),
		BearerToken:     env.GetString("VAULT_BEARER_TOKEN", ""),
		Roles:           env.GetString("VAULT_ROLES", ""),
		Context:         env.GetString("VAULT_CONTEXT", ""),

		// Connection
		ConnectionID:  env.GetString("CONNECTION_ID", ""),
		ConnectionURL: env.GetString("CONNECTION_URL", ""),

		// HTTP transport
		HTTPTimeout:      env.GetDuration("HTTP_TIMEOUT_SECONDS", 30, time.Second),
		HTTPRetryMax:     env.GetInt("HTTP_RETRY_MAX", 3),
		HTTPRetryWaitMin: env.GetDuration("HTTP_RETRY_WAIT_MIN_MS", 100, time.Millisecond),
		HTTPRetryWaitMax: env.GetDuration("HTTP_RETRY_WAIT_MAX_MS", 2000, time.Millisecond),

		// Rate limiting
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", false),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// Auth
		TokenExpirySkew: env.GetDuration("TOKEN_EXPIRY_SKEW_SECONDS", 60, time.Second),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "vaultclient"),
	}
}

// RoleList returns the configured roles, or nil when none are set.
func (c *Config) RoleList() []string {
	if strings.TrimSpace(c.Roles) == "" {
		return nil
	}
	parts := strings.Split(c.Roles, ",")
	roles := make([]string, 0, len(parts))
	for _, part := range parts {
		roles = append(roles, strings.TrimSpace(part))
	}
	return roles
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
