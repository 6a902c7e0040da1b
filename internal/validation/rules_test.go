package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/vaultclient/internal/errors"
)

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "valid string",
			input:     "validstring",
			shouldErr: false,
		},
		{
			name:      "only spaces",
			input:     "   ",
			shouldErr: true,
		},
		{
			name:      "only tabs",
			input:     "\t\t",
			shouldErr: true,
		},
		{
			name:      "mixed whitespace",
			input:     " \t\n ",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "valid key",
			input:     "sky-ab123-0123456789abcdef0123456789abcdef",
			shouldErr: false,
		},
		{
			name:      "wrong prefix",
			input:     "key-ab123-0123456789abcdef0123456789abcdef",
			shouldErr: true,
		},
		{
			name:      "short hex part",
			input:     "sky-ab123-0123456789abcdef",
			shouldErr: true,
		},
		{
			name:      "non hex characters",
			input:     "sky-ab123-0123456789abcdef0123456789abcdeg",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := APIKey.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHTTPSURL(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{name: "https url", input: "https://example.com/v1/gateway", shouldErr: false},
		{name: "http url", input: "http://example.com", shouldErr: true},
		{name: "ftp url", input: "ftp://example.com", shouldErr: true},
		{name: "no scheme", input: "example.com/path", shouldErr: true},
		{name: "unparseable", input: "https://exa mple.com/%zz", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HTTPSURL.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	t.Run("Success_PassingRules", func(t *testing.T) {
		err := Check("value", "EmptyTable", "table is empty", validation.Required, NotBlank)
		assert.NoError(t, err)
	})

	t.Run("Error_RequiredFails", func(t *testing.T) {
		err := Check("", "EmptyTable", "table is empty", validation.Required, NotBlank)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Equal(t, apperrors.Code("EmptyTable"), apperrors.CodeOf(err))
	})

	t.Run("Error_BlankFails", func(t *testing.T) {
		err := Check("   ", "EmptyTable", "table is empty", validation.Required, NotBlank)
		assert.True(t, apperrors.HasCode(err, "EmptyTable"))
	})
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t"))
	assert.False(t, IsBlank(" a "))
}
