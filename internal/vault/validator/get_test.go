package validator

import (
	"testing"

	apperrors "github.com/allisson/vaultclient/internal/errors"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
)

func TestValidateGet(t *testing.T) {
	tests := []struct {
		name         string
		req          vaultDomain.GetRequest
		expectedCode apperrors.Code
	}{
		{
			name: "Success_IDsWithRedaction",
			req:  vaultDomain.GetRequest{Table: "t", IDs: []string{"id1"}, RedactionType: vaultDomain.RedactionPlainText},
		},
		{
			name: "Success_IDsReturnTokens",
			req:  vaultDomain.GetRequest{Table: "t", IDs: []string{"id1"}, ReturnTokens: true},
		},
		{
			name: "Success_ColumnLookup",
			req: vaultDomain.GetRequest{
				Table:         "t",
				ColumnName:    "email",
				ColumnValues:  []string{"a@example.com"},
				RedactionType: vaultDomain.RedactionMasked,
				OrderBy:       vaultDomain.OrderAscending,
			},
		},
		{
			name: "Success_FieldsOffsetLimit",
			req: vaultDomain.GetRequest{
				Table:         "t",
				IDs:           []string{"id1"},
				RedactionType: vaultDomain.RedactionDefault,
				Fields:        []string{"a", "b"},
				Offset:        10,
				Limit:         25,
			},
		},
		{
			name:         "Error_EmptyTable",
			req:          vaultDomain.GetRequest{IDs: []string{"id1"}, ReturnTokens: true},
			expectedCode: vaultDomain.CodeEmptyTable,
		},
		{
			name:         "Error_AmbiguousLookupScenario",
			req:          vaultDomain.GetRequest{Table: "t", IDs: []string{"id1"}, ColumnName: "c"},
			expectedCode: vaultDomain.CodeAmbiguousLookupKey,
		},
		{
			name:         "Error_AmbiguousWithColumnValuesOnly",
			req:          vaultDomain.GetRequest{Table: "t", IDs: []string{"id1"}, ColumnValues: []string{"x"}},
			expectedCode: vaultDomain.CodeAmbiguousLookupKey,
		},
		{
			name:         "Error_NoLookupKey",
			req:          vaultDomain.GetRequest{Table: "t", RedactionType: vaultDomain.RedactionDefault},
			expectedCode: vaultDomain.CodeMissingLookupKey,
		},
		{
			name:         "Error_EmptyIDs",
			req:          vaultDomain.GetRequest{Table: "t", IDs: []string{}, ReturnTokens: true},
			expectedCode: vaultDomain.CodeEmptyIDs,
		},
		{
			name:         "Error_BlankID",
			req:          vaultDomain.GetRequest{Table: "t", IDs: []string{"id1", " "}, ReturnTokens: true},
			expectedCode: vaultDomain.CodeEmptyIDInIDs,
		},
		{
			name: "Error_ColumnNameWithoutValues",
			req: vaultDomain.GetRequest{
				Table:         "t",
				ColumnName:    "c",
				RedactionType: vaultDomain.RedactionDefault,
			},
			expectedCode: vaultDomain.CodeMissingColumnValues,
		},
		{
			name: "Error_ColumnValuesWithoutName",
			req: vaultDomain.GetRequest{
				Table:         "t",
				ColumnValues:  []string{"x"},
				RedactionType: vaultDomain.RedactionDefault,
			},
			expectedCode: vaultDomain.CodeMissingColumnName,
		},
		{
			name: "Error_BlankColumnName",
			req: vaultDomain.GetRequest{
				Table:         "t",
				ColumnName:    " ",
				ColumnValues:  []string{"x"},
				RedactionType: vaultDomain.RedactionDefault,
			},
			expectedCode: vaultDomain.CodeEmptyColumnName,
		},
		{
			name: "Error_EmptyColumnValues",
			req: vaultDomain.GetRequest{
				Table:         "t",
				ColumnName:    "c",
				ColumnValues:  []string{},
				RedactionType: vaultDomain.RedactionDefault,
			},
			expectedCode: vaultDomain.CodeEmptyColumnValues,
		},
		{
			name: "Error_BlankColumnValue",
			req: vaultDomain.GetRequest{
				Table:         "t",
				ColumnName:    "c",
				ColumnValues:  []string{"x", ""},
				RedactionType: vaultDomain.RedactionDefault,
			},
			expectedCode: vaultDomain.CodeEmptyValueInColumnValues,
		},
		{
			name: "Error_EmptyFields",
			req: vaultDomain.GetRequest{
				Table:        "t",
				IDs:          []string{"id1"},
				ReturnTokens: true,
				Fields:       []string{},
			},
			expectedCode: vaultDomain.CodeEmptyFields,
		},
		{
			name: "Error_BlankField",
			req: vaultDomain.GetRequest{
				Table:        "t",
				IDs:          []string{"id1"},
				ReturnTokens: true,
				Fields:       []string{"a", "\t"},
			},
			expectedCode: vaultDomain.CodeEmptyFieldInFields,
		},
		{
			name: "Error_ReturnTokensWithRedaction",
			req: vaultDomain.GetRequest{
				Table:         "t",
				IDs:           []string{"id1"},
				ReturnTokens:  true,
				RedactionType: vaultDomain.RedactionPlainText,
			},
			expectedCode: vaultDomain.CodeReturnTokensWithRedaction,
		},
		{
			name: "Error_ReturnTokensWithColumnLookup",
			req: vaultDomain.GetRequest{
				Table:        "t",
				ColumnName:   "c",
				ColumnValues: []string{"x"},
				ReturnTokens: true,
			},
			expectedCode: vaultDomain.CodeReturnTokensWithColumnLookup,
		},
		{
			name:         "Error_MissingRedaction",
			req:          vaultDomain.GetRequest{Table: "t", IDs: []string{"id1"}},
			expectedCode: vaultDomain.CodeMissingRedactionType,
		},
		{
			name:         "Error_UnknownRedaction",
			req:          vaultDomain.GetRequest{Table: "t", IDs: []string{"id1"}, RedactionType: "HIDDEN"},
			expectedCode: vaultDomain.CodeInvalidRedaction,
		},
		{
			name: "Error_NegativeOffset",
			req: vaultDomain.GetRequest{
				Table:        "t",
				IDs:          []string{"id1"},
				ReturnTokens: true,
				Offset:       -1,
			},
			expectedCode: vaultDomain.CodeInvalidOffset,
		},
		{
			name: "Error_NegativeLimit",
			req: vaultDomain.GetRequest{
				Table:        "t",
				IDs:          []string{"id1"},
				ReturnTokens: true,
				Limit:        -5,
			},
			expectedCode: vaultDomain.CodeInvalidLimit,
		},
		{
			name: "Error_UnknownOrder",
			req: vaultDomain.GetRequest{
				Table:        "t",
				IDs:          []string{"id1"},
				ReturnTokens: true,
				OrderBy:      "RANDOM",
			},
			expectedCode: vaultDomain.CodeInvalidOrderBy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCode(t, ValidateGet(&tt.req), tt.expectedCode)
		})
	}
}
