// Package mocks provides mock implementations for testing vault consumers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
)

// MockVaultUseCase is a mock implementation of VaultUseCase for testing.
type MockVaultUseCase struct {
	mock.Mock
}

// Insert mocks the Insert method of VaultUseCase.
func (m *MockVaultUseCase) Insert(
	ctx context.Context,
	req *vaultDomain.InsertRequest,
) (*vaultDomain.InsertResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vaultDomain.InsertResponse), args.Error(1)
}

// Get mocks the Get method of VaultUseCase.
func (m *MockVaultUseCase) Get(ctx context.Context, req *vaultDomain.GetRequest) (*vaultDomain.GetResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vaultDomain.GetResponse), args.Error(1)
}

// Update mocks the Update method of VaultUseCase.
func (m *MockVaultUseCase) Update(
	ctx context.Context,
	req *vaultDomain.UpdateRequest,
) (*vaultDomain.UpdateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vaultDomain.UpdateResponse), args.Error(1)
}

// Delete mocks the Delete method of VaultUseCase.
func (m *MockVaultUseCase) Delete(
	ctx context.Context,
	req *vaultDomain.DeleteRequest,
) (*vaultDomain.DeleteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vaultDomain.DeleteResponse), args.Error(1)
}

// Query mocks the Query method of VaultUseCase.
func (m *MockVaultUseCase) Query(
	ctx context.Context,
	req *vaultDomain.QueryRequest,
) (*vaultDomain.QueryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vaultDomain.QueryResponse), args.Error(1)
}

// Tokenize mocks the Tokenize method of VaultUseCase.
func (m *MockVaultUseCase) Tokenize(
	ctx context.Context,
	req *vaultDomain.TokenizeRequest,
) (*vaultDomain.TokenizeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vaultDomain.TokenizeResponse), args.Error(1)
}

// Detokenize mocks the Detokenize method of VaultUseCase.
func (m *MockVaultUseCase) Detokenize(
	ctx context.Context,
	req *vaultDomain.DetokenizeRequest,
) (*vaultDomain.DetokenizeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vaultDomain.DetokenizeResponse), args.Error(1)
}

// UploadFile mocks the UploadFile method of VaultUseCase.
func (m *MockVaultUseCase) UploadFile(
	ctx context.Context,
	req *vaultDomain.FileUploadRequest,
) (*vaultDomain.FileUploadResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vaultDomain.FileUploadResponse), args.Error(1)
}
