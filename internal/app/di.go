// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/vaultclient"
	"github.com/allisson/vaultclient/internal/config"
	"github.com/allisson/vaultclient/internal/metrics"
	"github.com/allisson/vaultclient/internal/transport"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	transport       transport.Transport

	// Client
	client *vaultclient.Client

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	transportInit       sync.Once
	clientInit          sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.setInitError("metricsProvider", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsProvider"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. It is a no-op recorder when
// metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.setInitError("businessMetrics", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("businessMetrics"); storedErr != nil {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Transport returns the outbound HTTP transport, instrumented when metrics are enabled.
func (c *Container) Transport() (transport.Transport, error) {
	var err error
	c.transportInit.Do(func() {
		c.transport, err = c.initTransport()
		if err != nil {
			c.setInitError("transport", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("transport"); storedErr != nil {
		return nil, storedErr
	}
	return c.transport, nil
}

// Client returns the vault client built from the configuration.
func (c *Container) Client() (*vaultclient.Client, error) {
	var err error
	c.clientInit.Do(func() {
		c.client, err = c.initClient()
		if err != nil {
			c.setInitError("client", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("client"); storedErr != nil {
		return nil, storedErr
	}
	return c.client, nil
}

// Credentials returns the credentials named by the configuration, or nil when none is
// set so the SKYFLOW_CREDENTIALS fallback applies. Conflicting sources are passed
// through and rejected by validation.
func (c *Container) Credentials() *vaultclient.Credentials {
	creds := &vaultclient.Credentials{
		Path:    c.config.CredentialsPath,
		Token:   c.config.BearerToken,
		APIKey:  c.config.APIKey,
		Roles:   c.config.RoleList(),
		Context: c.config.Context,
	}
	if creds.Path == "" && creds.Token == "" && creds.APIKey == "" {
		return nil
	}
	return creds
}

// VaultConfig returns the configured vault, or nil when no vault id is set.
func (c *Container) VaultConfig() *vaultclient.VaultConfig {
	if c.config.VaultID == "" {
		return nil
	}
	return &vaultclient.VaultConfig{
		VaultID:   c.config.VaultID,
		ClusterID: c.config.VaultClusterID,
		Env:       vaultclient.Env(c.config.VaultEnv),
	}
}

// ConnectionConfig returns the configured connection, or nil when no connection id is set.
func (c *Container) ConnectionConfig() *vaultclient.ConnectionConfig {
	if c.config.ConnectionID == "" {
		return nil
	}
	return &vaultclient.ConnectionConfig{
		ConnectionID:  c.config.ConnectionID,
		ConnectionURL: c.config.ConnectionURL,
	}
}

// HTTPConfig returns the transport settings of the configuration.
func (c *Container) HTTPConfig() transport.Config {
	cfg := transport.Config{
		Timeout:      c.config.HTTPTimeout,
		RetryMax:     c.config.HTTPRetryMax,
		RetryWaitMin: c.config.HTTPRetryWaitMin,
		RetryWaitMax: c.config.HTTPRetryWaitMax,
		Logger:       c.Logger(),
	}
	if c.config.RateLimitEnabled {
		cfg.RateLimit = c.config.RateLimitRequestsPerSec
		cfg.RateBurst = c.config.RateLimitBurst
	}
	return cfg
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("metrics provider shutdown: %w", err)
		}
	}
	return nil
}

func (c *Container) setInitError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initMetricsProvider creates the metrics provider.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	provider, err := metrics.NewProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initTransport creates the HTTP transport.
func (c *Container) initTransport() (transport.Transport, error) {
	var tr transport.Transport = transport.NewHTTPTransport(c.HTTPConfig())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for transport: %w", err)
		}
		tr = metrics.NewTransportWithMetrics(tr, provider.MeterProvider(), c.config.MetricsNamespace)
	}
	return tr, nil
}

// initClient creates the vault client with all its dependencies.
func (c *Container) initClient() (*vaultclient.Client, error) {
	tr, err := c.Transport()
	if err != nil {
		return nil, fmt.Errorf("failed to get transport for client: %w", err)
	}

	opts := []vaultclient.Option{
		vaultclient.WithLogger(c.Logger()),
		vaultclient.WithTransport(tr),
		vaultclient.WithTokenExpirySkew(c.config.TokenExpirySkew),
	}
	if creds := c.Credentials(); creds != nil {
		opts = append(opts, vaultclient.WithCredentials(creds))
	}
	if cfg := c.VaultConfig(); cfg != nil {
		opts = append(opts, vaultclient.WithVaultConfig(cfg))
	}
	if cfg := c.ConnectionConfig(); cfg != nil {
		opts = append(opts, vaultclient.WithConnectionConfig(cfg))
	}

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for client: %w", err)
		}
		opts = append(opts, vaultclient.WithBusinessMetrics(businessMetrics))
	}

	client, err := vaultclient.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}
