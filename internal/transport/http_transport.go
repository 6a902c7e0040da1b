package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	apperrors "github.com/allisson/vaultclient/internal/errors"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 32 << 20

// Config holds the HTTP transport settings.
type Config struct {
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// RateLimit is the number of requests per second allowed; zero disables limiting.
	RateLimit float64
	RateBurst int

	Logger *slog.Logger
}

// DefaultConfig returns the transport defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:      60 * time.Second,
		RetryMax:     2,
		RetryWaitMin: 200 * time.Millisecond,
		RetryWaitMax: 2 * time.Second,
	}
}

// HTTPTransport implements Transport with retries and an optional client-side rate
// limit. Idempotent requests are retried on 429, 5xx and connection errors. Other
// requests are retried only when the server cannot have processed them: a failed dial
// or a 429.
type HTTPTransport struct {
	client  *retryablehttp.Client
	limiter *rate.Limiter
}

// NewHTTPTransport creates an HTTPTransport from cfg.
func NewHTTPTransport(cfg Config) *HTTPTransport {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin > 0 {
		client.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		client.RetryWaitMax = cfg.RetryWaitMax
	}
	if cfg.Timeout > 0 {
		client.HTTPClient.Timeout = cfg.Timeout
	}
	// Hand the last response back instead of a "giving up" error so it can be mapped.
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.CheckRetry = retryPolicy
	// slog.Logger satisfies retryablehttp.LeveledLogger.
	client.Logger = nil
	if cfg.Logger != nil {
		client.Logger = cfg.Logger
	}

	t := &HTTPTransport{client: client}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return t
}

// Do performs the request. Errors are coded errors of kind ErrTransport.
func (t *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, networkError(req, err)
		}
	}

	body := req.RawBody
	if body == nil && req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, apperrors.NewCoded(apperrors.ErrTransport, apperrors.CodeInternal,
				"failed to encode request body").WithCause(err)
		}
		body = encoded
	}

	var rawBody any
	if body != nil {
		rawBody = body
	}
	ctx = context.WithValue(ctx, methodKey{}, req.Method)
	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, rawBody)
	if err != nil {
		return nil, networkError(req, err)
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if httpReq.Header.Get("X-Request-ID") == "" {
		httpReq.Header.Set("X-Request-ID", uuid.NewString())
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, networkError(req, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, networkError(req, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

type methodKey struct{}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodDelete:
		return true
	}
	return false
}

// retryPolicy never resends a non-idempotent request that may have reached the server.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	method, _ := ctx.Value(methodKey{}).(string)
	if isIdempotent(method) {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		var opErr *net.OpError
		if errors.As(err, &opErr) && opErr.Op == "dial" {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}
		return false, nil
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return true, nil
	}
	return false, nil
}

// networkError builds a NetworkError without leaking query strings into messages.
func networkError(req *Request, cause error) error {
	target := req.URL
	if u, err := url.Parse(req.URL); err == nil {
		u.RawQuery = ""
		target = u.String()
	}
	return apperrors.NewCoded(apperrors.ErrTransport, apperrors.CodeNetworkError,
		"%s %s failed", req.Method, target).WithCause(cause)
}

var _ Transport = (*HTTPTransport)(nil)
