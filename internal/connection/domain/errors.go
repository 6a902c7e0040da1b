package domain

import (
	"github.com/allisson/vaultclient/internal/errors"
)

// Configuration codes.
const (
	CodeEmptyConfig          errors.Code = "EmptyConfig"
	CodeEmptyConnectionID    errors.Code = "EmptyConnectionID"
	CodeEmptyConnectionURL   errors.Code = "EmptyConnectionURL"
	CodeInvalidConnectionURL errors.Code = "InvalidConnectionURL"
)

// Invocation codes.
const (
	CodeEmptyRequest         errors.Code = "EmptyRequest"
	CodeInvalidMethod        errors.Code = "InvalidMethod"
	CodeEmptyPathParamKey    errors.Code = "EmptyPathParamKey"
	CodeEmptyPathParamValue  errors.Code = "EmptyPathParamValue"
	CodeEmptyQueryParamKey   errors.Code = "EmptyQueryParamKey"
	CodeEmptyQueryParamValue errors.Code = "EmptyQueryParamValue"
	CodeEmptyHeaderKey       errors.Code = "EmptyHeaderKey"
	CodeEmptyHeaderValue     errors.Code = "EmptyHeaderValue"
	CodeInvalidContentType   errors.Code = "InvalidContentType"
	CodeInvalidRequestBody   errors.Code = "InvalidRequestBody"
)
