package usecase

import (
	"context"
	"sync"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	authService "github.com/allisson/vaultclient/internal/auth/service"
)

// Session binds an endpoint's credential scopes to its IdentityProvider.
//
// Every resolution run resets the provider, whether or not the resolved credentials
// changed, so the first call after any configuration mutation re-authenticates.
type Session struct {
	provider  IdentityProvider
	lookupEnv authService.EnvLookup

	mu         sync.Mutex
	override   *authDomain.Credentials
	common     *authDomain.Credentials
	resolved   *authDomain.Credentials
	resolveErr error
}

// NewSession creates a Session. A nil lookupEnv reads the process environment.
func NewSession(provider IdentityProvider, lookupEnv authService.EnvLookup) *Session {
	if lookupEnv == nil {
		lookupEnv = authService.OSEnvLookup
	}
	return &Session{
		provider:   provider,
		lookupEnv:  lookupEnv,
		resolveErr: authDomain.ErrMissingCredentials,
	}
}

// Bind stores the endpoint override and common credentials and re-runs resolution.
// The returned error is the resolution outcome; the scopes are stored either way.
func (s *Session) Bind(override, common *authDomain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.override = override.Clone()
	s.common = common.Clone()
	return s.resolveLocked()
}

// Identity returns the authorization value for the next call. When the last resolution
// failed it is retried first, so credentials exported after construction are picked up.
func (s *Session) Identity(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.resolveErr != nil {
		if err := s.resolveLocked(); err != nil {
			s.mu.Unlock()
			return "", err
		}
	}
	s.mu.Unlock()

	return s.provider.Identity(ctx)
}

// Credentials returns a copy of the last successfully resolved credentials.
func (s *Session) Credentials() (*authDomain.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolveErr != nil {
		if err := s.resolveLocked(); err != nil {
			return nil, err
		}
	}
	return s.resolved.Clone(), nil
}

func (s *Session) resolveLocked() error {
	creds, err := authService.Resolve(s.override, s.common, authService.EnvFallback(s.lookupEnv))
	if err == nil {
		err = creds.Validate()
	}
	if err != nil {
		s.resolved = nil
		s.resolveErr = err
		s.provider.Reset(nil)
		return err
	}

	s.resolved = creds
	s.resolveErr = nil
	s.provider.Reset(creds)
	return nil
}
