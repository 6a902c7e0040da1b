package domain

import (
	"github.com/allisson/vaultclient/internal/errors"
)

// Configuration codes.
const (
	CodeEmptyConfig    errors.Code = "EmptyConfig"
	CodeEmptyVaultID   errors.Code = "EmptyVaultID"
	CodeEmptyClusterID errors.Code = "EmptyClusterID"
	CodeInvalidEnv     errors.Code = "InvalidEnv"
)

// Request validation codes shared by several operations.
const (
	CodeEmptyRequest        errors.Code = "EmptyRequest"
	CodeEmptyTable          errors.Code = "EmptyTable"
	CodeEmptyIDs            errors.Code = "EmptyIDs"
	CodeEmptyIDInIDs        errors.Code = "EmptyIDInIDs"
	CodeInvalidTokenMode    errors.Code = "InvalidTokenMode"
	CodeInvalidRedaction    errors.Code = "InvalidRedactionType"
	CodeEmptyTokens         errors.Code = "EmptyTokens"
	CodeTokensNotAllowed    errors.Code = "TokensNotAllowedForDisable"
	CodeFieldTokenMismatch  errors.Code = "FieldTokenMismatch"
	CodeEmptyValueInTokens  errors.Code = "EmptyValueInTokens"
	CodeInsufficientTokens  errors.Code = "InsufficientTokens"
	CodeEmptySkyflowID      errors.Code = "EmptySkyflowID"
	CodeEmptyColumnName     errors.Code = "EmptyColumnName"
	CodeInvalidOrderBy      errors.Code = "InvalidOrderBy"
	CodeEmptyKeyInRecord    errors.Code = "EmptyKeyInRecord"
	CodeEmptyRecordInValues errors.Code = "EmptyRecordInValues"
)

// Insert codes.
const (
	CodeEmptyValues                       errors.Code = "EmptyValues"
	CodeEmptyUpsert                       errors.Code = "EmptyUpsert"
	CodeHomogeneousNotSupportedWithUpsert errors.Code = "HomogeneousNotSupportedWithUpsert"
)

// Get codes.
const (
	CodeMissingLookupKey             errors.Code = "MissingLookupKey"
	CodeAmbiguousLookupKey           errors.Code = "AmbiguousLookupKey"
	CodeMissingColumnName            errors.Code = "MissingColumnName"
	CodeMissingColumnValues          errors.Code = "MissingColumnValues"
	CodeEmptyColumnValues            errors.Code = "EmptyColumnValues"
	CodeEmptyValueInColumnValues     errors.Code = "EmptyValueInColumnValues"
	CodeEmptyFields                  errors.Code = "EmptyFields"
	CodeEmptyFieldInFields           errors.Code = "EmptyFieldInFields"
	CodeMissingRedactionType         errors.Code = "MissingRedactionType"
	CodeReturnTokensWithRedaction    errors.Code = "ReturnTokensWithRedaction"
	CodeReturnTokensWithColumnLookup errors.Code = "ReturnTokensWithColumnLookup"
	CodeInvalidOffset                errors.Code = "InvalidOffset"
	CodeInvalidLimit                 errors.Code = "InvalidLimit"
)

// Update codes.
const (
	CodeEmptyData        errors.Code = "EmptyData"
	CodeMissingSkyflowID errors.Code = "MissingSkyflowID"
)

// Query, tokenize and detokenize codes.
const (
	CodeEmptyQuery             errors.Code = "EmptyQuery"
	CodeEmptyTokenizeValues    errors.Code = "EmptyTokenizeValues"
	CodeEmptyValueInTokenize   errors.Code = "EmptyValueInTokenize"
	CodeEmptyColumnGroup       errors.Code = "EmptyColumnGroup"
	CodeEmptyDetokenizeData    errors.Code = "EmptyDetokenizeData"
	CodeEmptyTokenInDetokenize errors.Code = "EmptyTokenInDetokenize"
)

// File upload codes.
const (
	CodeMissingFileSource   errors.Code = "MissingFileSource"
	CodeMultipleFileSources errors.Code = "MultipleFileSources"
	CodeEmptyFilePath       errors.Code = "EmptyFilePath"
	CodeFileNotFound        errors.Code = "FileNotFound"
	CodeEmptyBase64         errors.Code = "EmptyBase64"
	CodeInvalidBase64       errors.Code = "InvalidBase64"
	CodeEmptyFileName       errors.Code = "EmptyFileName"
)

// Response codes.
const (
	CodeInvalidResponse errors.Code = "InvalidResponse"
)
