package metrics

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/vaultclient/internal/transport"
)

func TestNewTransportWithMetrics(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	failing := true
	next := transport.Func(func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
		if failing {
			return nil, errors.New("dial failed")
		}
		return &transport.Response{StatusCode: http.StatusCreated}, nil
	})
	tr := NewTransportWithMetrics(next, provider.MeterProvider(), "client")

	_, err = tr.Do(context.Background(), &transport.Request{
		Method: http.MethodPost,
		URL:    "https://c1.vault.skyflowapis.com/v1/vaults/v1/t",
	})
	assert.Error(t, err)

	failing = false
	for i := 0; i < 2; i++ {
		resp, err := tr.Do(context.Background(), &transport.Request{
			Method: http.MethodPost,
			URL:    "https://c1.vault.skyflowapis.com/v1/vaults/v1/t?x=1",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var buf bytes.Buffer
	require.NoError(t, provider.WriteText(&buf))
	output := buf.String()

	assertMetricLine(t, output, `client_http_requests_total`,
		`host="c1.vault.skyflowapis.com".*method="POST".*status_code="201"`, `2`)
	assertMetricLine(t, output, `client_http_requests_total`,
		`host="c1.vault.skyflowapis.com".*method="POST".*status_code="error"`, `1`)
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "example.com:8443", hostOf("https://example.com:8443/a/b?c=d"))
	assert.Equal(t, "unknown", hostOf("not a url"))
	assert.Equal(t, "unknown", hostOf("%zz"))
}
