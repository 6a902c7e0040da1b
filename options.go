package vaultclient

import (
	"log/slog"
	"os"
	"time"

	authService "github.com/allisson/vaultclient/internal/auth/service"
	"github.com/allisson/vaultclient/internal/transport"
)

// DefaultTokenExpirySkew is how long before its exp claim a cached bearer token is
// treated as expired.
const DefaultTokenExpirySkew = 60 * time.Second

// Option configures a Client.
type Option func(*options)

type options struct {
	vaults      []*VaultConfig
	connections []*ConnectionConfig
	credentials *Credentials
	logger      *slog.Logger
	transport   Transport
	httpConfig  HTTPConfig
	skew        time.Duration
	metrics     BusinessMetrics
	lookupEnv   authService.EnvLookup
}

func newOptions(opts []Option) *options {
	o := &options{
		httpConfig: DefaultHTTPConfig(),
		skew:       DefaultTokenExpirySkew,
		lookupEnv:  authService.OSEnvLookup,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return o
}

// WithVaultConfig registers a vault. It may be repeated; the first vault registered is
// the default one.
func WithVaultConfig(cfg *VaultConfig) Option {
	return func(o *options) {
		o.vaults = append(o.vaults, cfg)
	}
}

// WithConnectionConfig registers a connection. It may be repeated; the first connection
// registered is the default one.
func WithConnectionConfig(cfg *ConnectionConfig) Option {
	return func(o *options) {
		o.connections = append(o.connections, cfg)
	}
}

// WithCredentials sets the common credentials used by every endpoint without an override.
func WithCredentials(creds *Credentials) Option {
	return func(o *options) {
		o.credentials = creds
	}
}

// WithLogger sets the logger. The default writes warnings and errors to stderr.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTransport replaces the HTTP transport. WithHTTPConfig is ignored when it is set.
func WithTransport(tr Transport) Option {
	return func(o *options) {
		o.transport = tr
	}
}

// WithHTTPConfig sets timeouts, retries and rate limiting of the default transport.
func WithHTTPConfig(cfg HTTPConfig) Option {
	return func(o *options) {
		o.httpConfig = cfg
	}
}

// WithTokenExpirySkew sets how early cached bearer tokens are refreshed.
func WithTokenExpirySkew(skew time.Duration) Option {
	return func(o *options) {
		o.skew = skew
	}
}

// WithBusinessMetrics records operation counts and durations.
func WithBusinessMetrics(m BusinessMetrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithEnvLookup replaces the environment lookup used for the SKYFLOW_CREDENTIALS fallback.
func WithEnvLookup(lookup func(key string) (string, bool)) Option {
	return func(o *options) {
		o.lookupEnv = lookup
	}
}

func (o *options) buildTransport() Transport {
	if o.transport != nil {
		return o.transport
	}
	cfg := o.httpConfig
	if cfg.Logger == nil {
		cfg.Logger = o.logger
	}
	return transport.NewHTTPTransport(cfg)
}
