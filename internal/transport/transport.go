// Package transport defines the HTTP collaborator used by the vault and connection
// orchestrators and provides its default implementation on top of go-retryablehttp.
package transport

import (
	"context"
	"net/http"
)

// RequestIDHeader is the response header carrying the vault request id.
const RequestIDHeader = "x-request-id"

// Request is a single outbound call. Body is JSON-encoded unless RawBody is set.
type Request struct {
	Method  string
	URL     string
	Header  http.Header
	Body    any
	RawBody []byte
}

// Response is the raw result of a call that reached the server.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RequestID returns the server-assigned request id, if any.
func (r *Response) RequestID() string {
	if r.Header == nil {
		return ""
	}
	return r.Header.Get(RequestIDHeader)
}

// Transport performs HTTP calls. Implementations return an error only when the call
// could not complete; non-2xx responses are returned as a Response.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Func adapts a function to the Transport interface.
type Func func(ctx context.Context, req *Request) (*Response, error)

// Do calls f.
func (f Func) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
