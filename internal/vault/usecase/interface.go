// Package usecase implements the vault orchestrator: every operation validates its
// request, obtains the endpoint identity, maps the request to its wire payload and
// maps the vault response back.
package usecase

import (
	"context"

	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
)

// VaultUseCase defines the operations available on one vault endpoint.
type VaultUseCase interface {
	// Insert inserts records. With ContinueOnError the records are sent as a batch and
	// a *PartialBatchError is returned, together with the response, when some fail.
	Insert(ctx context.Context, req *vaultDomain.InsertRequest) (*vaultDomain.InsertResponse, error)

	// Get reads records by skyflow id or by a unique column.
	Get(ctx context.Context, req *vaultDomain.GetRequest) (*vaultDomain.GetResponse, error)

	// Update updates one record identified by the skyflow_id in the request data.
	Update(ctx context.Context, req *vaultDomain.UpdateRequest) (*vaultDomain.UpdateResponse, error)

	// Delete deletes records by skyflow id.
	Delete(ctx context.Context, req *vaultDomain.DeleteRequest) (*vaultDomain.DeleteResponse, error)

	// Query runs a SQL query.
	Query(ctx context.Context, req *vaultDomain.QueryRequest) (*vaultDomain.QueryResponse, error)

	// Tokenize returns a token for each value.
	Tokenize(ctx context.Context, req *vaultDomain.TokenizeRequest) (*vaultDomain.TokenizeResponse, error)

	// Detokenize reveals tokens. Per-token failures are returned as a *PartialBatchError
	// together with the response.
	Detokenize(ctx context.Context, req *vaultDomain.DetokenizeRequest) (*vaultDomain.DetokenizeResponse, error)

	// UploadFile uploads a file into a file column of an existing record.
	UploadFile(ctx context.Context, req *vaultDomain.FileUploadRequest) (*vaultDomain.FileUploadResponse, error)
}
