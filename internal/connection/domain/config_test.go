package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	apperrors "github.com/allisson/vaultclient/internal/errors"
)

func TestConnectionConfig_Validate(t *testing.T) {
	tests := []struct {
		name         string
		config       ConnectionConfig
		expectedCode apperrors.Code
	}{
		{
			name:   "Success_Minimal",
			config: ConnectionConfig{ConnectionID: "c1", ConnectionURL: "https://gw.example.com/card/{id}"},
		},
		{
			name: "Success_WithCredentials",
			config: ConnectionConfig{
				ConnectionID:  "c1",
				ConnectionURL: "https://gw.example.com",
				Credentials:   &authDomain.Credentials{Token: "t"},
			},
		},
		{
			name:         "Error_EmptyConnectionID",
			config:       ConnectionConfig{ConnectionURL: "https://gw.example.com"},
			expectedCode: CodeEmptyConnectionID,
		},
		{
			name:         "Error_EmptyConnectionURL",
			config:       ConnectionConfig{ConnectionID: "c1"},
			expectedCode: CodeEmptyConnectionURL,
		},
		{
			name:         "Error_HTTPScheme",
			config:       ConnectionConfig{ConnectionID: "c1", ConnectionURL: "http://gw.example.com"},
			expectedCode: CodeInvalidConnectionURL,
		},
		{
			name:         "Error_UnparseableURL",
			config:       ConnectionConfig{ConnectionID: "c1", ConnectionURL: "https://gw example.com/%zz"},
			expectedCode: CodeInvalidConnectionURL,
		},
		{
			name: "Error_InvalidCredentials",
			config: ConnectionConfig{
				ConnectionID:  "c1",
				ConnectionURL: "https://gw.example.com",
				Credentials:   &authDomain.Credentials{},
			},
			expectedCode: authDomain.CodeNoCredentialSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectedCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Equal(t, tt.expectedCode, apperrors.CodeOf(err))
		})
	}
}

func TestConnectionConfig_ValidateNil(t *testing.T) {
	var cfg *ConnectionConfig

	err := cfg.Validate()

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, CodeEmptyConfig, apperrors.CodeOf(err))
}

func TestConnectionConfig_Merge(t *testing.T) {
	base := ConnectionConfig{
		ConnectionID:  "c1",
		ConnectionURL: "https://a.example.com",
		Credentials:   &authDomain.Credentials{Token: "t"},
	}

	t.Run("Success_EmptyFieldsKept", func(t *testing.T) {
		merged := base.Merge(&ConnectionConfig{})
		assert.Equal(t, base.ConnectionURL, merged.ConnectionURL)
		assert.Equal(t, "t", merged.Credentials.Token)
	})

	t.Run("Success_NonEmptyFieldsWin", func(t *testing.T) {
		creds := &authDomain.Credentials{APIKey: "k"}
		merged := base.Merge(&ConnectionConfig{
			ConnectionID:  "other",
			ConnectionURL: "https://b.example.com",
			Credentials:   creds,
		})
		assert.Equal(t, "c1", merged.ConnectionID)
		assert.Equal(t, "https://b.example.com", merged.ConnectionURL)
		assert.Equal(t, "k", merged.Credentials.APIKey)
		assert.NotSame(t, creds, merged.Credentials)
	})
}
