package vaultclient

import (
	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	connectionDomain "github.com/allisson/vaultclient/internal/connection/domain"
	connectionUsecase "github.com/allisson/vaultclient/internal/connection/usecase"
	apperrors "github.com/allisson/vaultclient/internal/errors"
	"github.com/allisson/vaultclient/internal/metrics"
	"github.com/allisson/vaultclient/internal/transport"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
	vaultUsecase "github.com/allisson/vaultclient/internal/vault/usecase"
)

// Credentials and endpoint configuration.
type (
	Credentials      = authDomain.Credentials
	VaultConfig      = vaultDomain.VaultConfig
	ConnectionConfig = connectionDomain.ConnectionConfig
	Env              = vaultDomain.Env
)

const (
	EnvDev     = vaultDomain.EnvDev
	EnvStage   = vaultDomain.EnvStage
	EnvSandbox = vaultDomain.EnvSandbox
	EnvProd    = vaultDomain.EnvProd
)

// Vault operations.
type (
	Vault              = vaultUsecase.VaultUseCase
	InsertRequest      = vaultDomain.InsertRequest
	InsertResponse     = vaultDomain.InsertResponse
	GetRequest         = vaultDomain.GetRequest
	GetResponse        = vaultDomain.GetResponse
	UpdateRequest      = vaultDomain.UpdateRequest
	UpdateResponse     = vaultDomain.UpdateResponse
	DeleteRequest      = vaultDomain.DeleteRequest
	DeleteResponse     = vaultDomain.DeleteResponse
	QueryRequest       = vaultDomain.QueryRequest
	QueryResponse      = vaultDomain.QueryResponse
	TokenizeRequest    = vaultDomain.TokenizeRequest
	TokenizeResponse   = vaultDomain.TokenizeResponse
	ColumnValue        = vaultDomain.ColumnValue
	DetokenizeRequest  = vaultDomain.DetokenizeRequest
	DetokenizeResponse = vaultDomain.DetokenizeResponse
	DetokenizeData     = vaultDomain.DetokenizeData
	DetokenizedField   = vaultDomain.DetokenizedField
	FileUploadRequest  = vaultDomain.FileUploadRequest
	FileUploadResponse = vaultDomain.FileUploadResponse
	RecordError        = vaultDomain.RecordError
	TokenMode          = vaultDomain.TokenMode
	RedactionType      = vaultDomain.RedactionType
	OrderBy            = vaultDomain.OrderBy
)

const (
	TokenModeDisable      = vaultDomain.TokenModeDisable
	TokenModeEnable       = vaultDomain.TokenModeEnable
	TokenModeEnableStrict = vaultDomain.TokenModeEnableStrict

	RedactionDefault   = vaultDomain.RedactionDefault
	RedactionRedacted  = vaultDomain.RedactionRedacted
	RedactionMasked    = vaultDomain.RedactionMasked
	RedactionPlainText = vaultDomain.RedactionPlainText

	OrderAscending  = vaultDomain.OrderAscending
	OrderDescending = vaultDomain.OrderDescending
	OrderNone       = vaultDomain.OrderNone
)

// Connection operations.
type (
	Connection               = connectionUsecase.ConnectionUseCase
	InvokeConnectionRequest  = connectionDomain.InvokeConnectionRequest
	InvokeConnectionResponse = connectionDomain.InvokeConnectionResponse
	Method                   = connectionDomain.Method
	ContentType              = connectionDomain.ContentType
)

const (
	MethodGet    = connectionDomain.MethodGet
	MethodPost   = connectionDomain.MethodPost
	MethodPut    = connectionDomain.MethodPut
	MethodPatch  = connectionDomain.MethodPatch
	MethodDelete = connectionDomain.MethodDelete

	ContentTypeJSON = connectionDomain.ContentTypeJSON
	ContentTypeForm = connectionDomain.ContentTypeForm
)

// Signed data tokens.
type (
	SignedDataTokensRequest = authDomain.SignedDataTokensRequest
	SignedDataToken         = authDomain.SignedDataToken
)

// Collaborators that can be replaced with options.
type (
	Transport         = transport.Transport
	TransportRequest  = transport.Request
	TransportResponse = transport.Response
	TransportFunc     = transport.Func
	HTTPConfig        = transport.Config
	BusinessMetrics   = metrics.BusinessMetrics
)

// Errors.
type (
	Error             = apperrors.Error
	Code              = apperrors.Code
	PartialBatchError = vaultDomain.PartialBatchError
)

var (
	ErrNotFound     = apperrors.ErrNotFound
	ErrConflict     = apperrors.ErrConflict
	ErrInvalidInput = apperrors.ErrInvalidInput
	ErrUnauthorized = apperrors.ErrUnauthorized
	ErrTransport    = apperrors.ErrTransport
	ErrPartialBatch = apperrors.ErrPartialBatch
)

// CodeOf returns the code carried by err, or the empty code.
func CodeOf(err error) Code {
	return apperrors.CodeOf(err)
}

// IsConfigError reports whether err is a registry failure (duplicate or unknown id).
func IsConfigError(err error) bool {
	return apperrors.IsConfigError(err)
}

// DefaultHTTPConfig returns the HTTP transport defaults used by New.
func DefaultHTTPConfig() HTTPConfig {
	return transport.DefaultConfig()
}
