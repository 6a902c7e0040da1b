package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	authService "github.com/allisson/vaultclient/internal/auth/service"
	apperrors "github.com/allisson/vaultclient/internal/errors"
)

const (
	apiKeyCacheKey      = "api_key"
	bearerTokenCacheKey = "bearer_token"
)

// identityUseCase implements IdentityProvider on top of an expiring in-memory cache.
type identityUseCase struct {
	issuer authService.TokenIssuer
	skew   time.Duration
	logger *slog.Logger
	now    func() time.Time

	mu         sync.Mutex
	creds      *authDomain.Credentials
	generation uint64
	cache      *cache.Cache
	group      singleflight.Group
}

// Identity returns the cached identity or mints a new one.
func (i *identityUseCase) Identity(ctx context.Context) (string, error) {
	i.mu.Lock()
	creds, generation := i.creds, i.generation
	i.mu.Unlock()

	if creds == nil {
		return "", authDomain.ErrMissingCredentials
	}

	if creds.Source() == authDomain.SourceAPIKey {
		if apiKey, found := i.cache.Get(apiKeyCacheKey); found {
			return apiKey.(string), nil
		}
		i.mu.Lock()
		if generation == i.generation {
			i.cache.Set(apiKeyCacheKey, creds.APIKey, cache.NoExpiration)
		}
		i.mu.Unlock()
		return creds.APIKey, nil
	}

	if token, found := i.cache.Get(bearerTokenCacheKey); found {
		return token.(string), nil
	}

	// The generation is part of the key so that a flight started before Reset is never
	// joined by callers holding the new credentials. The flight is detached from the
	// caller that started it; each caller stops waiting on its own context.
	key := fmt.Sprintf("%s:%d", bearerTokenCacheKey, generation)
	flight := i.group.DoChan(key, func() (any, error) {
		if token, found := i.cache.Get(bearerTokenCacheKey); found {
			return token.(string), nil
		}

		token, err := i.issuer.Issue(context.WithoutCancel(ctx), creds)
		if err != nil {
			i.logger.Warn("bearer token issuance failed",
				slog.String("source", string(creds.Source())),
				slog.Any("error", err),
			)
			return nil, asAuthenticationError(err)
		}

		i.store(generation, token)
		i.logger.Debug("bearer token issued",
			slog.String("source", string(creds.Source())),
			slog.Time("expiry", token.Expiry),
		)
		return token.AccessToken, nil
	})

	select {
	case <-ctx.Done():
		return "", asAuthenticationError(ctx.Err())
	case result := <-flight:
		if result.Err != nil {
			return "", result.Err
		}
		return result.Val.(string), nil
	}
}

// store caches token until expiry minus skew. Tokens without a known expiry, or that
// are already inside the skew window, are handed out once and never cached.
func (i *identityUseCase) store(generation uint64, token *oauth2.Token) {
	if token.Expiry.IsZero() {
		return
	}
	ttl := token.Expiry.Sub(i.now()) - i.skew
	if ttl <= 0 {
		return
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if generation != i.generation {
		return
	}
	i.cache.Set(bearerTokenCacheKey, token.AccessToken, ttl)
}

// Reset swaps the credentials and flushes the cache.
func (i *identityUseCase) Reset(creds *authDomain.Credentials) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.creds = creds.Clone()
	i.generation++
	i.cache.Flush()
}

func asAuthenticationError(err error) error {
	if apperrors.Is(err, apperrors.ErrUnauthorized) {
		return err
	}
	return apperrors.Unauthorized(authDomain.CodeTokenIssuanceFailed,
		"unable to obtain bearer token").WithCause(err)
}

// NewIdentityUseCase creates an IdentityProvider that issues bearer tokens with issuer
// and treats them as expired skew before their exp claim.
func NewIdentityUseCase(issuer authService.TokenIssuer, skew time.Duration, logger *slog.Logger) IdentityProvider {
	if skew < 0 {
		skew = 0
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &identityUseCase{
		issuer: issuer,
		skew:   skew,
		logger: logger,
		now:    time.Now,
		// A zero cleanup interval starts no janitor goroutine; expired entries are
		// skipped by Get and overwritten on the next Set.
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// identityTokenSource adapts an IdentityProvider to oauth2.TokenSource.
type identityTokenSource struct {
	ctx      context.Context
	provider IdentityProvider
}

// Token returns the current identity as a bearer token.
func (s *identityTokenSource) Token() (*oauth2.Token, error) {
	identity, err := s.provider.Identity(s.ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: identity, TokenType: "Bearer"}, nil
}

// TokenSource exposes provider as an oauth2.TokenSource bound to ctx.
func TokenSource(ctx context.Context, provider IdentityProvider) oauth2.TokenSource {
	return &identityTokenSource{ctx: ctx, provider: provider}
}
