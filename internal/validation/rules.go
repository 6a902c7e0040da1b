// Package validation provides custom validation rules for the client.
package validation

import (
	"net/url"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/vaultclient/internal/errors"
)

var (
	// apiKeyRegex is the vendor api key format: sky-<5 alnum>-<32 hex>.
	apiKeyRegex = regexp.MustCompile(`^sky-[a-zA-Z0-9]{5}-[a-fA-F0-9]{32}$`)
)

// Check validates value against rules and reports the first failure as a coded
// invalid-input error carrying message. The underlying rule error is kept as the cause.
func Check(value any, code apperrors.Code, message string, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return apperrors.InvalidInput(code, "%s", message).WithCause(err)
	}
	return nil
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// APIKey validates the vendor api key format.
var APIKey = validation.NewStringRuleWithError(
	apiKeyRegex.MatchString,
	validation.NewError("validation_api_key", "must be a valid api key"),
)

// HTTPSURL validates that a string parses as an absolute https URL.
var HTTPSURL = validation.NewStringRuleWithError(
	func(s string) bool {
		u, err := url.Parse(s)
		if err != nil {
			return false
		}
		return u.Scheme == "https" && u.Host != ""
	},
	validation.NewError("validation_https_url", "must be a valid https url"),
)
