package metrics

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/allisson/vaultclient/internal/transport"
)

// transportWithMetrics decorates a Transport with outbound request metrics.
type transportWithMetrics struct {
	next           transport.Transport
	requestCounter metric.Int64Counter
	durationHisto  metric.Float64Histogram
}

// NewTransportWithMetrics wraps next so every call records a request counter and a
// duration histogram labelled with method, host and status_code. Calls that fail before
// a response is received are labelled status_code="error". When the instruments cannot
// be created next is returned unchanged.
func NewTransportWithMetrics(
	next transport.Transport,
	meterProvider metric.MeterProvider,
	namespace string,
) transport.Transport {
	meter := meterProvider.Meter(namespace)

	requestCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_total", namespace),
		metric.WithDescription("Total number of outbound HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return next
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_http_request_duration_seconds", namespace),
		metric.WithDescription("Outbound HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return next
	}

	return &transportWithMetrics{
		next:           next,
		requestCounter: requestCounter,
		durationHisto:  durationHisto,
	}
}

// Do records metrics for the call.
func (t *transportWithMetrics) Do(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	start := time.Now()
	resp, err := t.next.Do(ctx, req)

	statusCode := "error"
	if err == nil {
		statusCode = strconv.Itoa(resp.StatusCode)
	}
	attrs := metric.WithAttributes(
		attribute.String("method", req.Method),
		attribute.String("host", hostOf(req.URL)),
		attribute.String("status_code", statusCode),
	)

	t.requestCounter.Add(ctx, 1, attrs)
	t.durationHisto.Record(ctx, time.Since(start).Seconds(), attrs)

	return resp, err
}

// hostOf keeps the label cardinality bounded by dropping paths and queries.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}
