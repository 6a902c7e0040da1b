// Package service provides the credential services used to authenticate vault calls.
//
// This package resolves which credentials apply to an endpoint, loads service account
// documents, and exchanges them for bearer tokens by signing a JWT assertion.
package service

import (
	"context"

	"golang.org/x/oauth2"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
)

// TokenIssuer exchanges credentials for a bearer token.
// Implementations must not cache: caching belongs to the caller's identity provider.
type TokenIssuer interface {
	// Issue returns a bearer token for creds. Caller-supplied tokens are checked for
	// expiry and returned unchanged; file and string credentials are exchanged at the
	// token endpoint named in the service account document.
	Issue(ctx context.Context, creds *authDomain.Credentials) (*oauth2.Token, error)
}

// DataTokenSigner signs data tokens with the service account key.
type DataTokenSigner interface {
	Sign(
		creds *authDomain.Credentials,
		req *authDomain.SignedDataTokensRequest,
	) ([]authDomain.SignedDataToken, error)
}
