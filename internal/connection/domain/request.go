package domain

import (
	"net/http"
	"slices"
	"strings"

	apperrors "github.com/allisson/vaultclient/internal/errors"
	customValidation "github.com/allisson/vaultclient/internal/validation"
)

// Method is the HTTP method used to invoke a connection.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodPatch  Method = http.MethodPatch
	MethodDelete Method = http.MethodDelete
)

// ContentType selects how the request body is encoded.
type ContentType string

const (
	ContentTypeJSON ContentType = "application/json"
	ContentTypeForm ContentType = "application/x-www-form-urlencoded"
)

var supportedMethods = []Method{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete}

// InvokeConnectionRequest invokes a connection. PathParams replace {name} placeholders
// in the connection URL. An empty Method means POST and an empty ContentType means JSON.
type InvokeConnectionRequest struct {
	Method      Method
	PathParams  map[string]string
	QueryParams map[string]string
	Headers     map[string]string
	Body        map[string]any
	ContentType ContentType
}

// HTTPMethod returns the method to send, defaulting to POST.
func (r *InvokeConnectionRequest) HTTPMethod() string {
	if r.Method == "" {
		return http.MethodPost
	}
	return strings.ToUpper(string(r.Method))
}

// Validate checks the request before it is sent.
func (r *InvokeConnectionRequest) Validate() error {
	if r == nil {
		return apperrors.InvalidInput(CodeEmptyRequest, "invoke connection request must not be nil")
	}
	if r.Method != "" && !slices.Contains(supportedMethods, Method(r.HTTPMethod())) {
		return apperrors.InvalidInput(CodeInvalidMethod, "method %q is not supported", string(r.Method))
	}
	if err := checkParams(r.PathParams, CodeEmptyPathParamKey, CodeEmptyPathParamValue, "path param"); err != nil {
		return err
	}
	if err := checkParams(r.QueryParams, CodeEmptyQueryParamKey, CodeEmptyQueryParamValue, "query param"); err != nil {
		return err
	}
	if err := checkParams(r.Headers, CodeEmptyHeaderKey, CodeEmptyHeaderValue, "header"); err != nil {
		return err
	}
	switch r.ContentType {
	case "", ContentTypeJSON, ContentTypeForm:
	default:
		return apperrors.InvalidInput(CodeInvalidContentType,
			"content type must be %s or %s", ContentTypeJSON, ContentTypeForm)
	}
	return nil
}

func checkParams(params map[string]string, keyCode, valueCode apperrors.Code, kind string) error {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if customValidation.IsBlank(k) {
			return apperrors.InvalidInput(keyCode, "%s name must not be empty", kind)
		}
		if customValidation.IsBlank(params[k]) {
			return apperrors.InvalidInput(valueCode, "%s %q must not be empty", kind, k)
		}
	}
	return nil
}

// InvokeConnectionResponse holds the decoded gateway response. Data is the decoded JSON
// body, or the raw body as a string when it is not JSON.
type InvokeConnectionResponse struct {
	Data      any
	RequestID string
}
