package validator

import (
	apperrors "github.com/allisson/vaultclient/internal/errors"
	customValidation "github.com/allisson/vaultclient/internal/validation"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
)

// ValidateUpdate checks an update request. Data carries the skyflow_id of the record,
// which is excluded from the ENABLE_STRICT token count.
func ValidateUpdate(req *vaultDomain.UpdateRequest) error {
	if err := checkRequest(OpUpdate, req); err != nil {
		return err
	}
	if err := checkTable(OpUpdate, req.Table); err != nil {
		return err
	}
	if len(req.Data) == 0 {
		return apperrors.InvalidInput(vaultDomain.CodeEmptyData, "data must not be empty in update request")
	}
	id, ok := req.Data[vaultDomain.SkyflowIDField]
	if !ok {
		return apperrors.InvalidInput(vaultDomain.CodeMissingSkyflowID,
			"data must contain %s in update request", vaultDomain.SkyflowIDField)
	}
	if s, isString := id.(string); !isString || customValidation.IsBlank(s) {
		return apperrors.InvalidInput(vaultDomain.CodeEmptySkyflowID,
			"%s must be a non-empty string in update request", vaultDomain.SkyflowIDField)
	}
	for _, key := range sortedKeys(req.Data) {
		if customValidation.IsBlank(key) {
			return apperrors.InvalidInput(vaultDomain.CodeEmptyKeyInRecord,
				"data has an empty column name in update request")
		}
	}
	if err := checkTokenMode(OpUpdate, req.TokenMode); err != nil {
		return err
	}

	mode := req.TokenMode.Normalize()
	if mode == vaultDomain.TokenModeDisable {
		if req.Tokens != nil {
			return apperrors.InvalidInput(vaultDomain.CodeTokensNotAllowed,
				"tokens are not allowed when token mode is DISABLE in update request")
		}
		return nil
	}

	if len(req.Tokens) == 0 {
		return apperrors.InvalidInput(vaultDomain.CodeEmptyTokens,
			"tokens must not be empty when token mode is %s in update request", mode)
	}
	if mode == vaultDomain.TokenModeEnableStrict && len(req.Tokens) != len(req.Data)-1 {
		return apperrors.InvalidInput(vaultDomain.CodeInsufficientTokens,
			"token mode ENABLE_STRICT requires %d tokens, got %d in update request",
			len(req.Data)-1, len(req.Tokens))
	}
	return checkTokenMap(OpUpdate, 0, req.Tokens, req.Data)
}
