package validator

import (
	apperrors "github.com/allisson/vaultclient/internal/errors"
	customValidation "github.com/allisson/vaultclient/internal/validation"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
)

// ValidateInsert checks an insert request.
//
// Order: table, values, each record, upsert, upsert/homogeneous exclusivity, token mode,
// then the token rules of the mode. ENABLE_STRICT compares counts before any key check.
func ValidateInsert(req *vaultDomain.InsertRequest) error {
	if err := checkRequest(OpInsert, req); err != nil {
		return err
	}
	if err := checkTable(OpInsert, req.Table); err != nil {
		return err
	}
	if len(req.Values) == 0 {
		return apperrors.InvalidInput(vaultDomain.CodeEmptyValues, "values must not be empty in insert request")
	}
	for i, record := range req.Values {
		if err := checkRecord(OpInsert, i, record); err != nil {
			return err
		}
	}
	if req.Upsert != "" && customValidation.IsBlank(req.Upsert) {
		return apperrors.InvalidInput(vaultDomain.CodeEmptyUpsert, "upsert column must not be blank in insert request")
	}
	if req.Upsert != "" && req.Homogeneous {
		return apperrors.InvalidInput(vaultDomain.CodeHomogeneousNotSupportedWithUpsert,
			"homogeneous insert is not supported together with upsert")
	}
	if err := checkTokenMode(OpInsert, req.TokenMode); err != nil {
		return err
	}

	mode := req.TokenMode.Normalize()
	if mode == vaultDomain.TokenModeDisable {
		if req.Tokens != nil {
			return apperrors.InvalidInput(vaultDomain.CodeTokensNotAllowed,
				"tokens are not allowed when token mode is DISABLE in insert request")
		}
		return nil
	}

	if len(req.Tokens) == 0 {
		return apperrors.InvalidInput(vaultDomain.CodeEmptyTokens,
			"tokens must not be empty when token mode is %s in insert request", mode)
	}
	if mode == vaultDomain.TokenModeEnableStrict && len(req.Tokens) != len(req.Values) {
		return apperrors.InvalidInput(vaultDomain.CodeInsufficientTokens,
			"token mode ENABLE_STRICT requires %d token records, got %d in insert request",
			len(req.Values), len(req.Tokens))
	}
	for i, tokens := range req.Tokens {
		if i >= len(req.Values) {
			return apperrors.InvalidInput(vaultDomain.CodeFieldTokenMismatch,
				"tokens at index %d have no matching record in insert request", i)
		}
		if err := checkTokenMap(OpInsert, i, tokens, req.Values[i]); err != nil {
			return err
		}
	}
	return nil
}
