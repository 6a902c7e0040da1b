// Package mocks provides mock implementations for testing connection consumers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	connectionDomain "github.com/allisson/vaultclient/internal/connection/domain"
)

// MockConnectionUseCase is a mock implementation of ConnectionUseCase for testing.
type MockConnectionUseCase struct {
	mock.Mock
}

// Invoke mocks the Invoke method of ConnectionUseCase.
func (m *MockConnectionUseCase) Invoke(
	ctx context.Context,
	req *connectionDomain.InvokeConnectionRequest,
) (*connectionDomain.InvokeConnectionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*connectionDomain.InvokeConnectionResponse), args.Error(1)
}
