package usecase

import (
	"context"
	"time"

	connectionDomain "github.com/allisson/vaultclient/internal/connection/domain"
	"github.com/allisson/vaultclient/internal/metrics"
)

// connectionUseCaseWithMetrics decorates ConnectionUseCase with metrics instrumentation.
type connectionUseCaseWithMetrics struct {
	next    ConnectionUseCase
	metrics metrics.BusinessMetrics
}

// NewConnectionUseCaseWithMetrics wraps a ConnectionUseCase with metrics recording.
func NewConnectionUseCaseWithMetrics(useCase ConnectionUseCase, m metrics.BusinessMetrics) ConnectionUseCase {
	return &connectionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Invoke records metrics for connection invocations.
func (c *connectionUseCaseWithMetrics) Invoke(
	ctx context.Context,
	req *connectionDomain.InvokeConnectionRequest,
) (*connectionDomain.InvokeConnectionResponse, error) {
	start := time.Now()
	resp, err := c.next.Invoke(ctx, req)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "connection", "invoke", status)
	c.metrics.RecordDuration(ctx, "connection", "invoke", time.Since(start), status)

	return resp, err
}
