package validator

import (
	apperrors "github.com/allisson/vaultclient/internal/errors"
	customValidation "github.com/allisson/vaultclient/internal/validation"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
)

// ValidateGet checks a get request.
//
// Exactly one lookup key is allowed: IDs, or ColumnName together with ColumnValues.
// A redaction type is required unless ReturnTokens is set, and ReturnTokens only works
// with IDs and without a redaction type.
func ValidateGet(req *vaultDomain.GetRequest) error {
	if err := checkRequest(OpGet, req); err != nil {
		return err
	}
	if err := checkTable(OpGet, req.Table); err != nil {
		return err
	}

	hasIDs := req.IDs != nil
	hasColumn := req.ColumnName != "" || req.ColumnValues != nil
	switch {
	case hasIDs && hasColumn:
		return apperrors.InvalidInput(vaultDomain.CodeAmbiguousLookupKey,
			"get request must use either ids or column name and values, not both")
	case !hasIDs && !hasColumn:
		return apperrors.InvalidInput(vaultDomain.CodeMissingLookupKey,
			"get request must use either ids or column name and values")
	}

	if hasIDs {
		if err := checkIDs(OpGet, req.IDs); err != nil {
			return err
		}
	} else if err := checkColumnLookup(req); err != nil {
		return err
	}

	if req.Fields != nil {
		if len(req.Fields) == 0 {
			return apperrors.InvalidInput(vaultDomain.CodeEmptyFields, "fields must not be empty in get request")
		}
		for i, field := range req.Fields {
			if customValidation.IsBlank(field) {
				return apperrors.InvalidInput(vaultDomain.CodeEmptyFieldInFields,
					"field at index %d must not be empty in get request", i)
			}
		}
	}

	if req.ReturnTokens {
		if req.RedactionType != "" {
			return apperrors.InvalidInput(vaultDomain.CodeReturnTokensWithRedaction,
				"redaction type is not allowed when return tokens is set in get request")
		}
		if hasColumn {
			return apperrors.InvalidInput(vaultDomain.CodeReturnTokensWithColumnLookup,
				"return tokens is only allowed with ids in get request")
		}
	} else {
		if req.RedactionType == "" {
			return apperrors.InvalidInput(vaultDomain.CodeMissingRedactionType,
				"redaction type is required unless return tokens is set in get request")
		}
		if err := checkRedaction(OpGet, req.RedactionType); err != nil {
			return err
		}
	}

	if req.Offset < 0 {
		return apperrors.InvalidInput(vaultDomain.CodeInvalidOffset, "offset must not be negative in get request")
	}
	if req.Limit < 0 {
		return apperrors.InvalidInput(vaultDomain.CodeInvalidLimit, "limit must not be negative in get request")
	}
	if err := req.OrderBy.Validate(); err != nil {
		return apperrors.InvalidInput(vaultDomain.CodeInvalidOrderBy,
			"order by must be ASCENDING, DESCENDING or NONE in get request").WithCause(err)
	}
	return nil
}

func checkColumnLookup(req *vaultDomain.GetRequest) error {
	switch {
	case req.ColumnName == "":
		return apperrors.InvalidInput(vaultDomain.CodeMissingColumnName,
			"column values require a column name in get request")
	case req.ColumnValues == nil:
		return apperrors.InvalidInput(vaultDomain.CodeMissingColumnValues,
			"column name requires column values in get request")
	case customValidation.IsBlank(req.ColumnName):
		return apperrors.InvalidInput(vaultDomain.CodeEmptyColumnName,
			"column name must not be blank in get request")
	case len(req.ColumnValues) == 0:
		return apperrors.InvalidInput(vaultDomain.CodeEmptyColumnValues,
			"column values must not be empty in get request")
	}
	for i, value := range req.ColumnValues {
		if customValidation.IsBlank(value) {
			return apperrors.InvalidInput(vaultDomain.CodeEmptyValueInColumnValues,
				"column value at index %d must not be empty in get request", i)
		}
	}
	return nil
}
