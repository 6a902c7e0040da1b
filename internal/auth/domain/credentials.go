package domain

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/vaultclient/internal/errors"
	customValidation "github.com/allisson/vaultclient/internal/validation"
)

// Credentials names the identity used to call a vault or connection. An empty string
// means the field is absent. Roles distinguishes absent (nil) from present-but-empty.
type Credentials struct {
	Path              string   `json:"path,omitempty"`
	CredentialsString string   `json:"credentials_string,omitempty"`
	Token             string   `json:"token,omitempty"`
	APIKey            string   `json:"api_key,omitempty"`
	Roles             []string `json:"roles,omitempty"`
	Context           string   `json:"context,omitempty"`
}

// Source returns the kind of the first non-empty source field.
func (c Credentials) Source() SourceKind {
	switch {
	case c.Path != "":
		return SourceFilePath
	case c.CredentialsString != "":
		return SourceCredentialsString
	case c.Token != "":
		return SourceToken
	case c.APIKey != "":
		return SourceAPIKey
	default:
		return SourceNone
	}
}

// Clone returns a deep copy so callers can't mutate validated credentials.
func (c *Credentials) Clone() *Credentials {
	if c == nil {
		return nil
	}
	cp := *c
	if c.Roles != nil {
		cp.Roles = append(make([]string, 0, len(c.Roles)), c.Roles...)
	}
	return &cp
}

// Validate checks the credentials shape. Checks run in a fixed order and stop at the
// first failure: source count, source non-blank, api key format, roles, context.
// Context follows the empty-means-absent rule of the other string fields, so only a
// whitespace-only context yields EmptyContext; "" is never reported.
func (c Credentials) Validate() error {
	sources := 0
	for _, s := range []string{c.Path, c.CredentialsString, c.Token, c.APIKey} {
		if s != "" {
			sources++
		}
	}
	switch {
	case sources == 0:
		return errors.InvalidInput(
			CodeNoCredentialSource,
			"credentials must set one of path, credentials string, token or api key",
		)
	case sources > 1:
		return errors.InvalidInput(
			CodeMultipleCredentialSources,
			"credentials must set only one of path, credentials string, token or api key",
		)
	}

	var err error
	switch c.Source() {
	case SourceFilePath:
		err = customValidation.Check(c.Path, CodeEmptyFilePath, "credentials file path is blank",
			customValidation.NotBlank)
	case SourceCredentialsString:
		err = customValidation.Check(c.CredentialsString, CodeEmptyCredentialsString,
			"credentials string is blank", customValidation.NotBlank)
	case SourceToken:
		err = customValidation.Check(c.Token, CodeEmptyToken, "bearer token is blank",
			customValidation.NotBlank)
	case SourceAPIKey:
		err = customValidation.Check(c.APIKey, CodeEmptyAPIKey, "api key is blank",
			customValidation.NotBlank)
		if err == nil {
			err = customValidation.Check(c.APIKey, CodeInvalidAPIKey, "api key has an invalid format",
				customValidation.APIKey)
		}
	}
	if err != nil {
		return err
	}

	if c.Roles != nil {
		if err := customValidation.Check(c.Roles, CodeEmptyRoles, "roles must not be empty",
			validation.Required); err != nil {
			return err
		}
		for i, role := range c.Roles {
			if customValidation.IsBlank(role) {
				return errors.InvalidInput(CodeEmptyRoleInRoles, "role at index %d is blank", i)
			}
		}
	}

	if c.Context != "" {
		return customValidation.Check(c.Context, CodeEmptyContext, "context is blank",
			customValidation.NotBlank)
	}

	return nil
}
