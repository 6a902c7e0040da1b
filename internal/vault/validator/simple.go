package validator

import (
	"os"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/vaultclient/internal/errors"
	customValidation "github.com/allisson/vaultclient/internal/validation"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
)

// ValidateDelete checks a delete request.
func ValidateDelete(req *vaultDomain.DeleteRequest) error {
	if err := checkRequest(OpDelete, req); err != nil {
		return err
	}
	if err := checkTable(OpDelete, req.Table); err != nil {
		return err
	}
	return checkIDs(OpDelete, req.IDs)
}

// ValidateQuery checks a query request.
func ValidateQuery(req *vaultDomain.QueryRequest) error {
	if err := checkRequest(OpQuery, req); err != nil {
		return err
	}
	return customValidation.Check(req.Query, vaultDomain.CodeEmptyQuery, "query must not be empty",
		validation.Required, customValidation.NotBlank)
}

// ValidateTokenize checks a tokenize request.
func ValidateTokenize(req *vaultDomain.TokenizeRequest) error {
	if err := checkRequest(OpTokenize, req); err != nil {
		return err
	}
	if len(req.Values) == 0 {
		return apperrors.InvalidInput(vaultDomain.CodeEmptyTokenizeValues,
			"values must not be empty in tokenize request")
	}
	for i, value := range req.Values {
		if isBlankValue(value.Value) {
			return apperrors.InvalidInput(vaultDomain.CodeEmptyValueInTokenize,
				"value at index %d must not be empty in tokenize request", i)
		}
		if customValidation.IsBlank(value.ColumnGroup) {
			return apperrors.InvalidInput(vaultDomain.CodeEmptyColumnGroup,
				"column group at index %d must not be empty in tokenize request", i)
		}
	}
	return nil
}

// ValidateDetokenize checks a detokenize request.
func ValidateDetokenize(req *vaultDomain.DetokenizeRequest) error {
	if err := checkRequest(OpDetokenize, req); err != nil {
		return err
	}
	if len(req.Data) == 0 {
		return apperrors.InvalidInput(vaultDomain.CodeEmptyDetokenizeData,
			"data must not be empty in detokenize request")
	}
	for i, data := range req.Data {
		if customValidation.IsBlank(data.Token) {
			return apperrors.InvalidInput(vaultDomain.CodeEmptyTokenInDetokenize,
				"token at index %d must not be empty in detokenize request", i)
		}
		if data.RedactionType != "" {
			if err := checkRedaction(OpDetokenize, data.RedactionType); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateFileUpload checks a file upload request. Exactly one file source is allowed;
// a file path must exist and raw sources need a file name.
func ValidateFileUpload(req *vaultDomain.FileUploadRequest) error {
	if err := checkRequest(OpFileUpload, req); err != nil {
		return err
	}
	if err := checkTable(OpFileUpload, req.Table); err != nil {
		return err
	}
	if err := customValidation.Check(req.SkyflowID, vaultDomain.CodeEmptySkyflowID,
		"skyflow id must not be empty in file upload request",
		validation.Required, customValidation.NotBlank); err != nil {
		return err
	}
	if err := customValidation.Check(req.ColumnName, vaultDomain.CodeEmptyColumnName,
		"column name must not be empty in file upload request",
		validation.Required, customValidation.NotBlank); err != nil {
		return err
	}

	sources := 0
	for _, set := range []bool{req.FilePath != "", req.Base64 != "", req.File != nil} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return apperrors.InvalidInput(vaultDomain.CodeMissingFileSource,
			"one of file path, base64 or file must be set in file upload request")
	case sources > 1:
		return apperrors.InvalidInput(vaultDomain.CodeMultipleFileSources,
			"only one of file path, base64 or file may be set in file upload request")
	}

	switch {
	case req.FilePath != "":
		if customValidation.IsBlank(req.FilePath) {
			return apperrors.InvalidInput(vaultDomain.CodeEmptyFilePath,
				"file path must not be blank in file upload request")
		}
		info, err := os.Stat(req.FilePath)
		if err != nil || info.IsDir() {
			return apperrors.InvalidInput(vaultDomain.CodeFileNotFound,
				"file %q does not exist in file upload request", req.FilePath)
		}
		return nil
	case req.Base64 != "":
		if customValidation.IsBlank(req.Base64) {
			return apperrors.InvalidInput(vaultDomain.CodeEmptyBase64,
				"base64 content must not be blank in file upload request")
		}
		if err := customValidation.Check(req.Base64, vaultDomain.CodeInvalidBase64,
			"base64 content is not valid base64 in file upload request", customValidation.Base64); err != nil {
			return err
		}
	}

	return customValidation.Check(req.FileName, vaultDomain.CodeEmptyFileName,
		"file name is required for base64 and file sources in file upload request",
		validation.Required, customValidation.NotBlank)
}
