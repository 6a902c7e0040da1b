// Package mocks provides mock implementations for testing identity consumers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
)

// MockIdentityProvider is a mock implementation of IdentityProvider for testing.
type MockIdentityProvider struct {
	mock.Mock
}

// Identity mocks the Identity method of IdentityProvider.
func (m *MockIdentityProvider) Identity(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Reset mocks the Reset method of IdentityProvider.
func (m *MockIdentityProvider) Reset(creds *authDomain.Credentials) {
	m.Called(creds)
}
