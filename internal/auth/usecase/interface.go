// Package usecase implements the identity lifecycle used to authenticate vault calls:
// resolving which credentials apply, caching the resulting api key or bearer token and
// refreshing it at most once at a time per endpoint.
package usecase

import (
	"context"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
)

// IdentityProvider yields the value sent in the authorization header of a call.
// Each endpoint owns its own provider, so endpoints that share credentials still cache
// and refresh independently.
type IdentityProvider interface {
	// Identity returns the api key or a bearer token that is valid for at least the
	// configured expiry skew. Concurrent callers share a single issuance.
	Identity(ctx context.Context) (string, error)

	// Reset replaces the credentials and discards any cached identity. Passing nil
	// leaves the provider without credentials until the next Reset.
	Reset(creds *authDomain.Credentials)
}
