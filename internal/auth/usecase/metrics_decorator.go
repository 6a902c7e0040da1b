package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	"github.com/allisson/vaultclient/internal/metrics"
)

// identityUseCaseWithMetrics decorates IdentityProvider with metrics instrumentation.
type identityUseCaseWithMetrics struct {
	next    IdentityProvider
	metrics metrics.BusinessMetrics
}

// NewIdentityUseCaseWithMetrics wraps an IdentityProvider with metrics recording.
func NewIdentityUseCaseWithMetrics(provider IdentityProvider, m metrics.BusinessMetrics) IdentityProvider {
	return &identityUseCaseWithMetrics{
		next:    provider,
		metrics: m,
	}
}

// Identity records metrics for identity lookups, cache hits included.
func (i *identityUseCaseWithMetrics) Identity(ctx context.Context) (string, error) {
	start := time.Now()
	identity, err := i.next.Identity(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "auth", "identity", status)
	i.metrics.RecordDuration(ctx, "auth", "identity", time.Since(start), status)

	return identity, err
}

// Reset records credential resets.
func (i *identityUseCaseWithMetrics) Reset(creds *authDomain.Credentials) {
	i.next.Reset(creds)
	i.metrics.RecordOperation(context.Background(), "auth", "identity_reset", "success")
}
