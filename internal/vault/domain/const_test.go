package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv_BaseURL(t *testing.T) {
	tests := []struct {
		env      Env
		expected string
	}{
		{env: EnvProd, expected: "https://c1.vault.skyflowapis.com"},
		{env: EnvDev, expected: "https://c1.vault.skyflowapis.dev"},
		{env: EnvStage, expected: "https://c1.vault.skyflowapis.tech"},
		{env: EnvSandbox, expected: "https://c1.vault.skyflowapis-preview.com"},
		{env: "", expected: "https://c1.vault.skyflowapis.com"},
	}

	for _, tt := range tests {
		t.Run(string(tt.env), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.env.BaseURL("c1"))
		})
	}
}

func TestEnv_Validate(t *testing.T) {
	assert.NoError(t, Env("").Validate())
	assert.NoError(t, EnvSandbox.Validate())
	assert.Error(t, Env("QA").Validate())
}

func TestTokenMode(t *testing.T) {
	assert.Equal(t, TokenModeDisable, TokenMode("").Normalize())
	assert.Equal(t, TokenModeEnable, TokenModeEnable.Normalize())
	assert.NoError(t, TokenMode("").Validate())
	assert.NoError(t, TokenModeEnableStrict.Validate())
	assert.Error(t, TokenMode("STRICT").Validate())
}

func TestRedactionType_Validate(t *testing.T) {
	for _, r := range []RedactionType{RedactionDefault, RedactionRedacted, RedactionMasked, RedactionPlainText} {
		assert.NoError(t, r.Validate())
	}
	assert.Error(t, RedactionType("").Validate())
	assert.Error(t, RedactionType("HIDDEN").Validate())
}

func TestOrderBy_Validate(t *testing.T) {
	assert.NoError(t, OrderBy("").Validate())
	assert.NoError(t, OrderDescending.Validate())
	assert.Error(t, OrderBy("RANDOM").Validate())
}
