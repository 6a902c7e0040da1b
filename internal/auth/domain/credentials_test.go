package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/vaultclient/internal/errors"
)

const validAPIKey = "sky-ab123-0123456789abcdef0123456789abcdef"

func TestCredentials_Validate(t *testing.T) {
	tests := []struct {
		name         string
		creds        Credentials
		expectedCode errors.Code
	}{
		{
			name:  "Success_FilePath",
			creds: Credentials{Path: "a.json"},
		},
		{
			name:  "Success_CredentialsString",
			creds: Credentials{CredentialsString: `{"clientID":"c"}`},
		},
		{
			name:  "Success_Token",
			creds: Credentials{Token: "eyJhbGciOi"},
		},
		{
			name:  "Success_APIKey",
			creds: Credentials{APIKey: validAPIKey},
		},
		{
			name:  "Success_RolesAndContext",
			creds: Credentials{Path: "a.json", Roles: []string{"r1", "r2"}, Context: "ctx"},
		},
		{
			name:  "Success_EmptyContextIsAbsent",
			creds: Credentials{Path: "a.json", Context: ""},
		},
		{
			name:         "Error_NoSource",
			creds:        Credentials{},
			expectedCode: CodeNoCredentialSource,
		},
		{
			name:         "Error_NoSourceWithRoles",
			creds:        Credentials{Roles: []string{"r1"}},
			expectedCode: CodeNoCredentialSource,
		},
		{
			name:         "Error_PathAndToken",
			creds:        Credentials{Path: "a.json", Token: "x"},
			expectedCode: CodeMultipleCredentialSources,
		},
		{
			name:         "Error_AllSources",
			creds:        Credentials{Path: "a", CredentialsString: "b", Token: "c", APIKey: "d"},
			expectedCode: CodeMultipleCredentialSources,
		},
		{
			name:         "Error_MultipleSourcesWinsOverBlank",
			creds:        Credentials{Path: "  ", APIKey: "  "},
			expectedCode: CodeMultipleCredentialSources,
		},
		{
			name:         "Error_BlankPath",
			creds:        Credentials{Path: "   "},
			expectedCode: CodeEmptyFilePath,
		},
		{
			name:         "Error_BlankCredentialsString",
			creds:        Credentials{CredentialsString: "\t"},
			expectedCode: CodeEmptyCredentialsString,
		},
		{
			name:         "Error_BlankToken",
			creds:        Credentials{Token: " "},
			expectedCode: CodeEmptyToken,
		},
		{
			name:         "Error_BlankAPIKey",
			creds:        Credentials{APIKey: "  "},
			expectedCode: CodeEmptyAPIKey,
		},
		{
			name:         "Error_InvalidAPIKey",
			creds:        Credentials{APIKey: "not-an-api-key"},
			expectedCode: CodeInvalidAPIKey,
		},
		{
			name:         "Error_InvalidAPIKeyBeforeRoles",
			creds:        Credentials{APIKey: "bad", Roles: []string{}},
			expectedCode: CodeInvalidAPIKey,
		},
		{
			name:         "Error_EmptyRoles",
			creds:        Credentials{Path: "a.json", Roles: []string{}},
			expectedCode: CodeEmptyRoles,
		},
		{
			name:         "Error_BlankRole",
			creds:        Credentials{Path: "a.json", Roles: []string{"r1", " "}},
			expectedCode: CodeEmptyRoleInRoles,
		},
		{
			name:         "Error_RolesBeforeContext",
			creds:        Credentials{Path: "a.json", Roles: []string{""}, Context: " "},
			expectedCode: CodeEmptyRoleInRoles,
		},
		{
			name:         "Error_BlankContext",
			creds:        Credentials{Path: "a.json", Context: "   "},
			expectedCode: CodeEmptyContext,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if tt.expectedCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, errors.ErrInvalidInput)
			assert.Equal(t, tt.expectedCode, errors.CodeOf(err))
		})
	}
}

func TestCredentials_Source(t *testing.T) {
	assert.Equal(t, SourceFilePath, Credentials{Path: "a"}.Source())
	assert.Equal(t, SourceCredentialsString, Credentials{CredentialsString: "a"}.Source())
	assert.Equal(t, SourceToken, Credentials{Token: "a"}.Source())
	assert.Equal(t, SourceAPIKey, Credentials{APIKey: "a"}.Source())
	assert.Equal(t, SourceNone, Credentials{}.Source())
}

func TestCredentials_Clone(t *testing.T) {
	t.Run("Success_DeepCopiesRoles", func(t *testing.T) {
		orig := &Credentials{Path: "a.json", Roles: []string{"r1"}}
		cp := orig.Clone()

		cp.Roles[0] = "changed"

		assert.Equal(t, "r1", orig.Roles[0])
		assert.Equal(t, orig.Path, cp.Path)
	})

	t.Run("Success_NilRolesStayNil", func(t *testing.T) {
		cp := (&Credentials{Token: "t"}).Clone()
		assert.Nil(t, cp.Roles)
	})

	t.Run("Success_NilReceiver", func(t *testing.T) {
		var c *Credentials
		assert.Nil(t, c.Clone())
	})
}
