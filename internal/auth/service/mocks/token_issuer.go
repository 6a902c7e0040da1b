// Package mocks provides mock implementations of the credential services.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
)

// MockTokenIssuer is a mock implementation of TokenIssuer for testing.
type MockTokenIssuer struct {
	mock.Mock
}

// Issue mocks the Issue method of TokenIssuer.
func (m *MockTokenIssuer) Issue(ctx context.Context, creds *authDomain.Credentials) (*oauth2.Token, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}
