package domain

import (
	"github.com/allisson/vaultclient/internal/errors"
)

// Credential validation codes (kind errors.ErrInvalidInput).
const (
	CodeNoCredentialSource        errors.Code = "NoCredentialSource"
	CodeMultipleCredentialSources errors.Code = "MultipleCredentialSources"
	CodeEmptyFilePath             errors.Code = "EmptyFilePath"
	CodeEmptyCredentialsString    errors.Code = "EmptyCredentialsString"
	CodeEmptyToken                errors.Code = "EmptyToken"
	CodeEmptyAPIKey               errors.Code = "EmptyAPIKey"
	CodeInvalidAPIKey             errors.Code = "InvalidAPIKey"
	CodeEmptyRoles                errors.Code = "EmptyRoles"
	CodeEmptyRoleInRoles          errors.Code = "EmptyRoleInRoles"
	CodeEmptyContext              errors.Code = "EmptyContext"
	CodeEmptyDataTokens           errors.Code = "EmptyDataTokens"
	CodeEmptyDataToken            errors.Code = "EmptyDataToken"
)

// Authentication codes (kind errors.ErrUnauthorized).
const (
	CodeMissingCredentials      errors.Code = "MissingCredentials"
	CodeCredentialsFileNotFound errors.Code = "CredentialsFileNotFound"
	CodeInvalidCredentialsJSON  errors.Code = "InvalidCredentialsJSON"
	CodeMissingClientID         errors.Code = "MissingClientID"
	CodeMissingKeyID            errors.Code = "MissingKeyID"
	CodeMissingTokenURI         errors.Code = "MissingTokenURI"
	CodeMissingPrivateKey       errors.Code = "MissingPrivateKey"
	CodeInvalidPrivateKey       errors.Code = "InvalidPrivateKey"
	CodeInvalidToken            errors.Code = "InvalidToken"
	CodeTokenExpired            errors.Code = "TokenExpired"
	CodeTokenIssuanceFailed     errors.Code = "TokenIssuanceFailed"
)

// ErrMissingCredentials is returned when no credential source is available. A malformed
// environment fallback produces the same error.
var ErrMissingCredentials = errors.Unauthorized(
	CodeMissingCredentials,
	"no credentials configured: set endpoint credentials, common credentials or the %s environment variable",
	EnvCredentialsKey,
)
