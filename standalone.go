package vaultclient

import (
	"context"

	"golang.org/x/oauth2"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	authService "github.com/allisson/vaultclient/internal/auth/service"
	authUsecase "github.com/allisson/vaultclient/internal/auth/usecase"
)

// resolveStandalone resolves creds against the environment fallback and validates the result.
func resolveStandalone(creds *Credentials, o *options) (*authDomain.Credentials, error) {
	resolved, err := authService.Resolve(creds, nil, authService.EnvFallback(o.lookupEnv))
	if err != nil {
		return nil, err
	}
	if err := resolved.Validate(); err != nil {
		return nil, err
	}
	return resolved, nil
}

// GenerateBearerToken exchanges a service account for a bearer token without creating a
// Client. A nil creds reads SKYFLOW_CREDENTIALS. Only WithTransport, WithHTTPConfig,
// WithLogger and WithEnvLookup apply.
func GenerateBearerToken(ctx context.Context, creds *Credentials, opts ...Option) (*oauth2.Token, error) {
	o := newOptions(opts)
	resolved, err := resolveStandalone(creds, o)
	if err != nil {
		return nil, err
	}
	return authService.NewTokenIssuer(o.buildTransport()).Issue(ctx, resolved)
}

// TokenSource returns an oauth2.TokenSource that caches the bearer token for creds and
// refreshes it shortly before it expires.
func TokenSource(ctx context.Context, creds *Credentials, opts ...Option) (oauth2.TokenSource, error) {
	o := newOptions(opts)
	resolved, err := resolveStandalone(creds, o)
	if err != nil {
		return nil, err
	}
	provider := authUsecase.NewIdentityUseCase(authService.NewTokenIssuer(o.buildTransport()), o.skew, o.logger)
	provider.Reset(resolved)
	return authUsecase.TokenSource(ctx, provider), nil
}

// SignDataTokens signs each data token with the service account key so it can be
// detokenized without a bearer token.
func SignDataTokens(creds *Credentials, req *SignedDataTokensRequest, opts ...Option) ([]SignedDataToken, error) {
	o := newOptions(opts)
	resolved, err := resolveStandalone(creds, o)
	if err != nil {
		return nil, err
	}
	return authService.NewDataTokenSigner().Sign(resolved, req)
}
