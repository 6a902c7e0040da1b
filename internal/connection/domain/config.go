// Package domain defines the connection endpoint configuration and the invocation
// request and response.
package domain

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	apperrors "github.com/allisson/vaultclient/internal/errors"
	customValidation "github.com/allisson/vaultclient/internal/validation"
)

// ConnectionConfig names one connection endpoint. Credentials overrides the client-wide
// common credentials for this connection only.
type ConnectionConfig struct {
	ConnectionID  string
	ConnectionURL string
	Credentials   *authDomain.Credentials
}

// Validate checks the config shape, including the override credentials when set.
func (c *ConnectionConfig) Validate() error {
	if c == nil {
		return apperrors.InvalidInput(CodeEmptyConfig, "connection config must not be nil")
	}
	if err := customValidation.Check(c.ConnectionID, CodeEmptyConnectionID, "connection id must not be empty",
		validation.Required, customValidation.NotBlank); err != nil {
		return err
	}
	if err := customValidation.Check(c.ConnectionURL, CodeEmptyConnectionURL, "connection url must not be empty",
		validation.Required, customValidation.NotBlank); err != nil {
		return err
	}
	if err := customValidation.Check(c.ConnectionURL, CodeInvalidConnectionURL,
		"connection url must be a valid https url", customValidation.HTTPSURL); err != nil {
		return err
	}
	if c.Credentials != nil {
		return c.Credentials.Validate()
	}
	return nil
}

// Merge returns c with every non-empty field of update applied. The connection id is kept.
func (c ConnectionConfig) Merge(update *ConnectionConfig) ConnectionConfig {
	merged := c
	if update.ConnectionURL != "" {
		merged.ConnectionURL = update.ConnectionURL
	}
	if update.Credentials != nil {
		merged.Credentials = update.Credentials.Clone()
	}
	return merged
}

// Clone returns a deep copy of the config.
func (c *ConnectionConfig) Clone() *ConnectionConfig {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Credentials = c.Credentials.Clone()
	return &cp
}
