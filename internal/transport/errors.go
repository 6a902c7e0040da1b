package transport

import (
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apperrors "github.com/allisson/vaultclient/internal/errors"
)

// ErrorFromResponse maps a non-2xx response to an HTTPError. The vault error envelope is
// {"error": {"message", "http_code", "http_status", "grpc_code", "details"}}; any other
// body is used verbatim as the message.
func ErrorFromResponse(resp *Response) error {
	body := resp.Body
	message := ""
	grpcCode := 0
	var details []any

	if gjson.ValidBytes(body) {
		envelope := gjson.GetBytes(body, "error")
		switch {
		case envelope.IsObject():
			message = envelope.Get("message").String()
			grpcCode = int(envelope.Get("grpc_code").Int())
			for _, d := range envelope.Get("details").Array() {
				details = append(details, d.Value())
			}
		case envelope.Type == gjson.String:
			message = envelope.String()
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &apperrors.Error{
		Kind:       apperrors.ErrTransport,
		Code:       apperrors.CodeHTTPError,
		Message:    message,
		HTTPStatus: resp.StatusCode,
		GRPCCode:   grpcCode,
		RequestID:  resp.RequestID(),
		Details:    details,
	}
}
