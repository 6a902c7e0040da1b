// Package validator enforces the structural and cross-field rules of every vault
// request before anything is sent. Each entry point runs its checks in a fixed order
// and returns the first violation, so a given malformed request always yields the
// same coded error.
package validator

import (
	"maps"
	"slices"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/vaultclient/internal/errors"
	customValidation "github.com/allisson/vaultclient/internal/validation"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
)

// Operation names used in messages.
const (
	OpInsert     = "insert"
	OpGet        = "get"
	OpUpdate     = "update"
	OpDelete     = "delete"
	OpQuery      = "query"
	OpTokenize   = "tokenize"
	OpDetokenize = "detokenize"
	OpFileUpload = "file upload"
)

func checkRequest[T any](op string, req *T) error {
	if req == nil {
		return apperrors.InvalidInput(vaultDomain.CodeEmptyRequest, "%s request must not be nil", op)
	}
	return nil
}

func checkTable(op, table string) error {
	return customValidation.Check(table, vaultDomain.CodeEmptyTable,
		"table name must not be empty in "+op+" request",
		validation.Required, customValidation.NotBlank)
}

func checkIDs(op string, ids []string) error {
	if len(ids) == 0 {
		return apperrors.InvalidInput(vaultDomain.CodeEmptyIDs, "ids must not be empty in %s request", op)
	}
	for i, id := range ids {
		if customValidation.IsBlank(id) {
			return apperrors.InvalidInput(vaultDomain.CodeEmptyIDInIDs,
				"id at index %d must not be empty in %s request", i, op)
		}
	}
	return nil
}

func checkRecord(op string, index int, record map[string]any) error {
	if len(record) == 0 {
		return apperrors.InvalidInput(vaultDomain.CodeEmptyRecordInValues,
			"record at index %d must not be empty in %s request", index, op)
	}
	for _, key := range sortedKeys(record) {
		if customValidation.IsBlank(key) {
			return apperrors.InvalidInput(vaultDomain.CodeEmptyKeyInRecord,
				"record at index %d has an empty column name in %s request", index, op)
		}
	}
	return nil
}

func checkTokenMode(op string, mode vaultDomain.TokenMode) error {
	if err := mode.Validate(); err != nil {
		return apperrors.InvalidInput(vaultDomain.CodeInvalidTokenMode,
			"token mode must be DISABLE, ENABLE or ENABLE_STRICT in %s request", op).WithCause(err)
	}
	return nil
}

// checkTokenMap verifies that every token names a field of record and is not blank.
func checkTokenMap(op string, index int, tokens, record map[string]any) error {
	for _, key := range sortedKeys(tokens) {
		if _, ok := record[key]; !ok || key == vaultDomain.SkyflowIDField {
			return apperrors.InvalidInput(vaultDomain.CodeFieldTokenMismatch,
				"token for %q at index %d has no matching field in %s request", key, index, op)
		}
		if isBlankValue(tokens[key]) {
			return apperrors.InvalidInput(vaultDomain.CodeEmptyValueInTokens,
				"token for %q at index %d must not be empty in %s request", key, index, op)
		}
	}
	return nil
}

func checkRedaction(op string, redaction vaultDomain.RedactionType) error {
	if err := redaction.Validate(); err != nil {
		return apperrors.InvalidInput(vaultDomain.CodeInvalidRedaction,
			"redaction type must be DEFAULT, REDACTED, MASKED or PLAIN_TEXT in %s request", op).WithCause(err)
	}
	return nil
}

// sortedKeys returns the map keys in order so that violations are reported
// deterministically.
func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

func isBlankValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return customValidation.IsBlank(value)
	default:
		return false
	}
}
