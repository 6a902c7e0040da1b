package domain

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	apperrors "github.com/allisson/vaultclient/internal/errors"
	customValidation "github.com/allisson/vaultclient/internal/validation"
)

// VaultConfig names one vault endpoint. Credentials overrides the client-wide common
// credentials for this vault only.
type VaultConfig struct {
	VaultID     string
	ClusterID   string
	Env         Env
	Credentials *authDomain.Credentials
}

// Validate checks the config shape, including the override credentials when set.
func (c *VaultConfig) Validate() error {
	if c == nil {
		return apperrors.InvalidInput(CodeEmptyConfig, "vault config must not be nil")
	}
	if err := customValidation.Check(c.VaultID, CodeEmptyVaultID, "vault id must not be empty",
		validation.Required, customValidation.NotBlank); err != nil {
		return err
	}
	if err := customValidation.Check(c.ClusterID, CodeEmptyClusterID, "cluster id must not be empty",
		validation.Required, customValidation.NotBlank); err != nil {
		return err
	}
	if err := c.Env.Validate(); err != nil {
		return apperrors.InvalidInput(CodeInvalidEnv, "env must be one of DEV, STAGE, SANDBOX or PROD").
			WithCause(err)
	}
	if c.Credentials != nil {
		return c.Credentials.Validate()
	}
	return nil
}

// Merge returns c with every non-empty field of update applied. The vault id is kept.
func (c VaultConfig) Merge(update *VaultConfig) VaultConfig {
	merged := c
	if update.ClusterID != "" {
		merged.ClusterID = update.ClusterID
	}
	if update.Env != "" {
		merged.Env = update.Env
	}
	if update.Credentials != nil {
		merged.Credentials = update.Credentials.Clone()
	}
	return merged
}

// BaseURL returns the vault base URL for the config.
func (c *VaultConfig) BaseURL() string {
	return c.Env.BaseURL(c.ClusterID)
}

// Clone returns a deep copy of the config.
func (c *VaultConfig) Clone() *VaultConfig {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Credentials = c.Credentials.Clone()
	return &cp
}
