// Package domain defines the credential model used to authenticate against the vault.
// A Credentials value names exactly one source (file path, JSON string, bearer token
// or api key) plus optional roles and context used when minting bearer tokens.
package domain

import "time"

// EnvCredentialsKey is the environment variable consulted when neither endpoint-scoped
// nor common credentials are configured. It holds a credentials JSON string.
const EnvCredentialsKey = "SKYFLOW_CREDENTIALS"

// Token issuance constants.
const (
	// JWTBearerGrantType is the grant type sent to the token endpoint.
	JWTBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	// AssertionTTL is the lifetime of the signed assertion exchanged for a bearer token.
	AssertionTTL = time.Hour

	// DefaultExpirySkew is how long before its expiry a cached bearer token is treated as expired.
	DefaultExpirySkew = 60 * time.Second

	// RolePrefix prefixes every role id in the issuance scope.
	RolePrefix = "role:"

	// SignedTokenPrefix prefixes every signed data token.
	SignedTokenPrefix = "signed_token_"

	// DefaultSignedTokenTTL is the lifetime of a signed data token when none is requested.
	DefaultSignedTokenTTL = 60 * time.Second
)

// SourceKind identifies which credential source a Credentials value uses.
type SourceKind string

const (
	SourceNone              SourceKind = ""
	SourceFilePath          SourceKind = "file_path"
	SourceCredentialsString SourceKind = "credentials_string"
	SourceToken             SourceKind = "token"
	SourceAPIKey            SourceKind = "api_key"
)
