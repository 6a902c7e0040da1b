// Package usecase implements the connection orchestrator, which invokes a gateway
// endpoint with the connection's identity.
package usecase

import (
	"context"

	connectionDomain "github.com/allisson/vaultclient/internal/connection/domain"
)

// ConnectionUseCase defines the operations available on one connection endpoint.
type ConnectionUseCase interface {
	// Invoke calls the connection URL with the request's params, headers and body.
	Invoke(
		ctx context.Context,
		req *connectionDomain.InvokeConnectionRequest,
	) (*connectionDomain.InvokeConnectionResponse, error)
}
