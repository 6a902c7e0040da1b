package metrics

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_WriteText(t *testing.T) {
	t.Run("Success_RecordedOperation", func(t *testing.T) {
		provider, err := NewProvider()
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		bm, err := NewBusinessMetrics(provider.MeterProvider(), "text_test")
		require.NoError(t, err)
		bm.RecordOperation(context.Background(), "vault", "query", "success")

		var buf bytes.Buffer
		require.NoError(t, provider.WriteText(&buf))

		output := buf.String()
		assert.Contains(t, output, "# TYPE text_test_operations_total counter")
		assertMetricLine(t, output, `text_test_operations_total`,
			`domain="vault".*operation="query".*status="success"`, `1`)
	})

	t.Run("Success_NothingRecorded", func(t *testing.T) {
		provider, err := NewProvider()
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, provider.WriteText(&buf))

		assert.NotContains(t, buf.String(), "_operations_total")
	})
}

func TestProvider_PrivateRegistry(t *testing.T) {
	first, err := NewProvider()
	require.NoError(t, err)
	second, err := NewProvider()
	require.NoError(t, err)

	// The same metric names on two providers must not collide.
	firstMetrics, err := NewBusinessMetrics(first.MeterProvider(), "client")
	require.NoError(t, err)
	secondMetrics, err := NewBusinessMetrics(second.MeterProvider(), "client")
	require.NoError(t, err)

	firstMetrics.RecordOperation(context.Background(), "vault", "insert", "success")
	firstMetrics.RecordOperation(context.Background(), "vault", "insert", "success")
	secondMetrics.RecordOperation(context.Background(), "connection", "invoke", "error")

	var firstOut, secondOut bytes.Buffer
	require.NoError(t, first.WriteText(&firstOut))
	require.NoError(t, second.WriteText(&secondOut))

	assertMetricLine(t, firstOut.String(), `client_operations_total`,
		`domain="vault".*operation="insert".*status="success"`, `2`)
	assert.NotContains(t, firstOut.String(), `domain="connection"`)
	assertMetricLine(t, secondOut.String(), `client_operations_total`,
		`domain="connection".*operation="invoke".*status="error"`, `1`)
	assert.NotContains(t, secondOut.String(), `domain="vault"`)
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_ShutdownProvider", func(t *testing.T) {
		provider, err := NewProvider()
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("Success_ZeroValueProvider", func(t *testing.T) {
		provider := &Provider{}

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}
