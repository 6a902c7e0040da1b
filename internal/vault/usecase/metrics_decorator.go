package usecase

import (
	"context"
	"time"

	apperrors "github.com/allisson/vaultclient/internal/errors"
	"github.com/allisson/vaultclient/internal/metrics"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
)

// vaultUseCaseWithMetrics decorates VaultUseCase with metrics instrumentation.
type vaultUseCaseWithMetrics struct {
	next    VaultUseCase
	metrics metrics.BusinessMetrics
}

// NewVaultUseCaseWithMetrics wraps a VaultUseCase with metrics recording.
func NewVaultUseCaseWithMetrics(useCase VaultUseCase, m metrics.BusinessMetrics) VaultUseCase {
	return &vaultUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record reports one operation. Partial batch failures are reported as "partial".
func (v *vaultUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
		var partial *vaultDomain.PartialBatchError
		if apperrors.As(err, &partial) {
			status = "partial"
		}
	}

	v.metrics.RecordOperation(ctx, "vault", operation, status)
	v.metrics.RecordDuration(ctx, "vault", operation, time.Since(start), status)
}

// Insert records metrics for insert operations.
func (v *vaultUseCaseWithMetrics) Insert(
	ctx context.Context,
	req *vaultDomain.InsertRequest,
) (*vaultDomain.InsertResponse, error) {
	start := time.Now()
	resp, err := v.next.Insert(ctx, req)
	v.record(ctx, "insert", start, err)
	return resp, err
}

// Get records metrics for get operations.
func (v *vaultUseCaseWithMetrics) Get(
	ctx context.Context,
	req *vaultDomain.GetRequest,
) (*vaultDomain.GetResponse, error) {
	start := time.Now()
	resp, err := v.next.Get(ctx, req)
	v.record(ctx, "get", start, err)
	return resp, err
}

// Update records metrics for update operations.
func (v *vaultUseCaseWithMetrics) Update(
	ctx context.Context,
	req *vaultDomain.UpdateRequest,
) (*vaultDomain.UpdateResponse, error) {
	start := time.Now()
	resp, err := v.next.Update(ctx, req)
	v.record(ctx, "update", start, err)
	return resp, err
}

// Delete records metrics for delete operations.
func (v *vaultUseCaseWithMetrics) Delete(
	ctx context.Context,
	req *vaultDomain.DeleteRequest,
) (*vaultDomain.DeleteResponse, error) {
	start := time.Now()
	resp, err := v.next.Delete(ctx, req)
	v.record(ctx, "delete", start, err)
	return resp, err
}

// Query records metrics for query operations.
func (v *vaultUseCaseWithMetrics) Query(
	ctx context.Context,
	req *vaultDomain.QueryRequest,
) (*vaultDomain.QueryResponse, error) {
	start := time.Now()
	resp, err := v.next.Query(ctx, req)
	v.record(ctx, "query", start, err)
	return resp, err
}

// Tokenize records metrics for tokenize operations.
func (v *vaultUseCaseWithMetrics) Tokenize(
	ctx context.Context,
	req *vaultDomain.TokenizeRequest,
) (*vaultDomain.TokenizeResponse, error) {
	start := time.Now()
	resp, err := v.next.Tokenize(ctx, req)
	v.record(ctx, "tokenize", start, err)
	return resp, err
}

// Detokenize records metrics for detokenize operations.
func (v *vaultUseCaseWithMetrics) Detokenize(
	ctx context.Context,
	req *vaultDomain.DetokenizeRequest,
) (*vaultDomain.DetokenizeResponse, error) {
	start := time.Now()
	resp, err := v.next.Detokenize(ctx, req)
	v.record(ctx, "detokenize", start, err)
	return resp, err
}

// UploadFile records metrics for file uploads.
func (v *vaultUseCaseWithMetrics) UploadFile(
	ctx context.Context,
	req *vaultDomain.FileUploadRequest,
) (*vaultDomain.FileUploadResponse, error) {
	start := time.Now()
	resp, err := v.next.UploadFile(ctx, req)
	v.record(ctx, "upload_file", start, err)
	return resp, err
}
