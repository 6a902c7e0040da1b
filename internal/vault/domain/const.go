// Package domain defines the vault endpoint configuration and the request and response
// models of every vault operation.
package domain

import "fmt"

// Env selects the vault deployment a cluster lives in.
type Env string

const (
	EnvDev     Env = "DEV"
	EnvStage   Env = "STAGE"
	EnvSandbox Env = "SANDBOX"
	EnvProd    Env = "PROD"
)

// vaultDomain is the vendor domain shared by every environment.
const vaultDomain = "vault.skyflowapis"

var envSuffix = map[Env]string{
	EnvProd:    ".com",
	EnvDev:     ".dev",
	EnvStage:   ".tech",
	EnvSandbox: "-preview.com",
}

// Validate checks if the env is known. The empty env is valid and means PROD.
func (e Env) Validate() error {
	if e == "" {
		return nil
	}
	if _, ok := envSuffix[e]; !ok {
		return fmt.Errorf("unknown env %q", string(e))
	}
	return nil
}

// BaseURL returns https://<cluster>.vault.skyflowapis<suffix> for the env.
func (e Env) BaseURL(clusterID string) string {
	suffix, ok := envSuffix[e]
	if !ok {
		suffix = envSuffix[EnvProd]
	}
	return "https://" + clusterID + "." + vaultDomain + suffix
}

// String returns the string representation of the env.
func (e Env) String() string {
	return string(e)
}

// TokenMode controls whether callers bring their own tokens on insert and update.
type TokenMode string

const (
	TokenModeDisable      TokenMode = "DISABLE"
	TokenModeEnable       TokenMode = "ENABLE"
	TokenModeEnableStrict TokenMode = "ENABLE_STRICT"
)

// Normalize returns DISABLE for the zero value.
func (m TokenMode) Normalize() TokenMode {
	if m == "" {
		return TokenModeDisable
	}
	return m
}

// Validate checks if the token mode is known.
func (m TokenMode) Validate() error {
	switch m.Normalize() {
	case TokenModeDisable, TokenModeEnable, TokenModeEnableStrict:
		return nil
	default:
		return fmt.Errorf("unknown token mode %q", string(m))
	}
}

// RedactionType controls how much plaintext a read reveals.
type RedactionType string

const (
	RedactionDefault   RedactionType = "DEFAULT"
	RedactionRedacted  RedactionType = "REDACTED"
	RedactionMasked    RedactionType = "MASKED"
	RedactionPlainText RedactionType = "PLAIN_TEXT"
)

// Validate checks if the redaction type is known.
func (r RedactionType) Validate() error {
	switch r {
	case RedactionDefault, RedactionRedacted, RedactionMasked, RedactionPlainText:
		return nil
	default:
		return fmt.Errorf("unknown redaction type %q", string(r))
	}
}

// OrderBy sorts records returned by a column lookup.
type OrderBy string

const (
	OrderAscending  OrderBy = "ASCENDING"
	OrderDescending OrderBy = "DESCENDING"
	OrderNone       OrderBy = "NONE"
)

// Validate checks if the order is known. The empty order is valid.
func (o OrderBy) Validate() error {
	switch o {
	case "", OrderAscending, OrderDescending, OrderNone:
		return nil
	default:
		return fmt.Errorf("unknown order %q", string(o))
	}
}

// SkyflowIDField is the record identifier column.
const SkyflowIDField = "skyflow_id"
