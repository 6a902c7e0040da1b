package validator

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/vaultclient/internal/errors"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
)

func TestValidateDelete(t *testing.T) {
	tests := []struct {
		name         string
		req          vaultDomain.DeleteRequest
		expectedCode apperrors.Code
	}{
		{name: "Success", req: vaultDomain.DeleteRequest{Table: "t", IDs: []string{"id1", "id2"}}},
		{name: "Error_EmptyTable", req: vaultDomain.DeleteRequest{IDs: []string{"id1"}}, expectedCode: vaultDomain.CodeEmptyTable},
		{name: "Error_NoIDs", req: vaultDomain.DeleteRequest{Table: "t"}, expectedCode: vaultDomain.CodeEmptyIDs},
		{name: "Error_BlankID", req: vaultDomain.DeleteRequest{Table: "t", IDs: []string{""}}, expectedCode: vaultDomain.CodeEmptyIDInIDs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCode(t, ValidateDelete(&tt.req), tt.expectedCode)
		})
	}
}

func TestValidateQuery(t *testing.T) {
	assertCode(t, ValidateQuery(&vaultDomain.QueryRequest{Query: "select * from t"}), "")
	assertCode(t, ValidateQuery(&vaultDomain.QueryRequest{}), vaultDomain.CodeEmptyQuery)
	assertCode(t, ValidateQuery(&vaultDomain.QueryRequest{Query: "   "}), vaultDomain.CodeEmptyQuery)
}

func TestValidateTokenize(t *testing.T) {
	tests := []struct {
		name         string
		req          vaultDomain.TokenizeRequest
		expectedCode apperrors.Code
	}{
		{
			name: "Success",
			req:  vaultDomain.TokenizeRequest{Values: []vaultDomain.ColumnValue{{Value: "4111", ColumnGroup: "card"}, {Value: 42, ColumnGroup: "n"}}},
		},
		{name: "Error_NoValues", req: vaultDomain.TokenizeRequest{}, expectedCode: vaultDomain.CodeEmptyTokenizeValues},
		{
			name:         "Error_BlankValue",
			req:          vaultDomain.TokenizeRequest{Values: []vaultDomain.ColumnValue{{Value: " ", ColumnGroup: "card"}}},
			expectedCode: vaultDomain.CodeEmptyValueInTokenize,
		},
		{
			name:         "Error_NilValue",
			req:          vaultDomain.TokenizeRequest{Values: []vaultDomain.ColumnValue{{ColumnGroup: "card"}}},
			expectedCode: vaultDomain.CodeEmptyValueInTokenize,
		},
		{
			name:         "Error_BlankColumnGroup",
			req:          vaultDomain.TokenizeRequest{Values: []vaultDomain.ColumnValue{{Value: "4111"}}},
			expectedCode: vaultDomain.CodeEmptyColumnGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCode(t, ValidateTokenize(&tt.req), tt.expectedCode)
		})
	}
}

func TestValidateDetokenize(t *testing.T) {
	tests := []struct {
		name         string
		req          vaultDomain.DetokenizeRequest
		expectedCode apperrors.Code
	}{
		{
			name: "Success",
			req: vaultDomain.DetokenizeRequest{Data: []vaultDomain.DetokenizeData{
				{Token: "tok1"},
				{Token: "tok2", RedactionType: vaultDomain.RedactionMasked},
			}},
		},
		{name: "Error_NoData", req: vaultDomain.DetokenizeRequest{}, expectedCode: vaultDomain.CodeEmptyDetokenizeData},
		{
			name:         "Error_BlankToken",
			req:          vaultDomain.DetokenizeRequest{Data: []vaultDomain.DetokenizeData{{Token: "tok1"}, {Token: " "}}},
			expectedCode: vaultDomain.CodeEmptyTokenInDetokenize,
		},
		{
			name:         "Error_UnknownRedaction",
			req:          vaultDomain.DetokenizeRequest{Data: []vaultDomain.DetokenizeData{{Token: "tok1", RedactionType: "X"}}},
			expectedCode: vaultDomain.CodeInvalidRedaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCode(t, ValidateDetokenize(&tt.req), tt.expectedCode)
		})
	}
}

func TestValidateFileUpload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("pdf"), 0o600))
	encoded := base64.StdEncoding.EncodeToString([]byte("pdf"))

	base := func(mutate func(*vaultDomain.FileUploadRequest)) vaultDomain.FileUploadRequest {
		req := vaultDomain.FileUploadRequest{Table: "t", SkyflowID: "id1", ColumnName: "file"}
		mutate(&req)
		return req
	}

	tests := []struct {
		name         string
		req          vaultDomain.FileUploadRequest
		expectedCode apperrors.Code
	}{
		{name: "Success_FilePath", req: base(func(r *vaultDomain.FileUploadRequest) { r.FilePath = path })},
		{
			name: "Success_Base64",
			req: base(func(r *vaultDomain.FileUploadRequest) {
				r.Base64 = encoded
				r.FileName = "doc.pdf"
			}),
		},
		{
			name: "Success_Reader",
			req: base(func(r *vaultDomain.FileUploadRequest) {
				r.File = strings.NewReader("pdf")
				r.FileName = "doc.pdf"
			}),
		},
		{
			name:         "Error_EmptyTable",
			req:          base(func(r *vaultDomain.FileUploadRequest) { r.Table = ""; r.FilePath = path }),
			expectedCode: vaultDomain.CodeEmptyTable,
		},
		{
			name:         "Error_EmptySkyflowID",
			req:          base(func(r *vaultDomain.FileUploadRequest) { r.SkyflowID = " "; r.FilePath = path }),
			expectedCode: vaultDomain.CodeEmptySkyflowID,
		},
		{
			name:         "Error_EmptyColumnName",
			req:          base(func(r *vaultDomain.FileUploadRequest) { r.ColumnName = ""; r.FilePath = path }),
			expectedCode: vaultDomain.CodeEmptyColumnName,
		},
		{
			name:         "Error_NoSource",
			req:          base(func(r *vaultDomain.FileUploadRequest) {}),
			expectedCode: vaultDomain.CodeMissingFileSource,
		},
		{
			name: "Error_TwoSources",
			req: base(func(r *vaultDomain.FileUploadRequest) {
				r.FilePath = path
				r.Base64 = encoded
			}),
			expectedCode: vaultDomain.CodeMultipleFileSources,
		},
		{
			name:         "Error_BlankPath",
			req:          base(func(r *vaultDomain.FileUploadRequest) { r.FilePath = "  " }),
			expectedCode: vaultDomain.CodeEmptyFilePath,
		},
		{
			name:         "Error_MissingFile",
			req:          base(func(r *vaultDomain.FileUploadRequest) { r.FilePath = path + ".missing" }),
			expectedCode: vaultDomain.CodeFileNotFound,
		},
		{
			name: "Error_BlankBase64",
			req: base(func(r *vaultDomain.FileUploadRequest) {
				r.Base64 = " "
				r.FileName = "doc.pdf"
			}),
			expectedCode: vaultDomain.CodeEmptyBase64,
		},
		{
			name: "Error_InvalidBase64",
			req: base(func(r *vaultDomain.FileUploadRequest) {
				r.Base64 = "not base64!!"
				r.FileName = "doc.pdf"
			}),
			expectedCode: vaultDomain.CodeInvalidBase64,
		},
		{
			name:         "Error_Base64WithoutFileName",
			req:          base(func(r *vaultDomain.FileUploadRequest) { r.Base64 = encoded }),
			expectedCode: vaultDomain.CodeEmptyFileName,
		},
		{
			name:         "Error_ReaderWithoutFileName",
			req:          base(func(r *vaultDomain.FileUploadRequest) { r.File = strings.NewReader("pdf") }),
			expectedCode: vaultDomain.CodeEmptyFileName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCode(t, ValidateFileUpload(&tt.req), tt.expectedCode)
		})
	}
}
