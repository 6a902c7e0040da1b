package validation

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase64(t *testing.T) {
	t.Run("Success_ValidBase64", func(t *testing.T) {
		assert.NoError(t, Base64.Validate(base64.StdEncoding.EncodeToString([]byte("file-bytes"))))
	})

	t.Run("Success_EmptyDelegatedToRequired", func(t *testing.T) {
		assert.NoError(t, Base64.Validate(""))
	})

	t.Run("Error_InvalidBase64", func(t *testing.T) {
		assert.Error(t, Base64.Validate("not base64!!"))
	})

	t.Run("Error_NotAString", func(t *testing.T) {
		assert.Error(t, Base64.Validate(42))
	})
}
