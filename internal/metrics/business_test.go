package metrics

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine checks that the Prometheus output contains a metric matching the
// given name, partial label pattern, and value. Uses regex to handle extra OTel scope
// labels injected by the Prometheus exporter.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)
	noOpMetrics.RecordOperation(context.Background(), "vault", "insert", "success")
	noOpMetrics.RecordDuration(context.Background(), "vault", "insert", 100*time.Millisecond, "error")
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "vault", "insert", "success")
	bm.RecordOperation(ctx, "vault", "insert", "success")
	bm.RecordOperation(ctx, "vault", "insert", "partial")
	bm.RecordOperation(ctx, "auth", "identity", "error")
	bm.RecordOperation(ctx, "connection", "invoke", "success")

	bm.RecordDuration(ctx, "vault", "insert", 50*time.Millisecond, "success")
	bm.RecordDuration(ctx, "vault", "insert", 60*time.Millisecond, "success")
	bm.RecordDuration(ctx, "connection", "invoke", 10*time.Millisecond, "success")

	var buf bytes.Buffer
	require.NoError(t, provider.WriteText(&buf))
	output := buf.String()

	assertMetricLine(t, output, `integration_test_operations_total`,
		`domain="vault".*operation="insert".*status="success"`, `2`)
	assertMetricLine(t, output, `integration_test_operations_total`,
		`domain="vault".*operation="insert".*status="partial"`, `1`)
	assertMetricLine(t, output, `integration_test_operations_total`,
		`domain="auth".*operation="identity".*status="error"`, `1`)
	assertMetricLine(t, output, `integration_test_operation_duration_seconds_count`,
		`domain="vault".*operation="insert".*status="success"`, `2`)
}
