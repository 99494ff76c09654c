package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultAPIKeyMinLength is the minimum API key length used by ValidateAPIKey.
const DefaultAPIKeyMinLength = 10

// ValidateAPIKey checks value against DefaultAPIKeyMinLength.
func ValidateAPIKey(value string) ValidationResult {
	return ValidateAPIKeyMinLength(value, DefaultAPIKeyMinLength)
}

// ValidateAPIKeyMinLength reports whether value is a non-empty key of at least
// minLength characters. Length is counted in runes.
func ValidateAPIKeyMinLength(value string, minLength int) ValidationResult {
	minLength = max(minLength, 1)
	if utf8.RuneCountInString(value) < minLength {
		return fail("API key must be at least %d characters long", minLength)
	}
	return ok()
}

// ValidateBranchName rejects empty names, names starting with '.' or '/',
// and names containing whitespace.
func ValidateBranchName(value string) ValidationResult {
	if value == "" {
		return fail("branch name is required")
	}
	if strings.HasPrefix(value, ".") || strings.HasPrefix(value, "/") {
		return fail("branch name cannot start with '.' or '/'")
	}
	if strings.ContainsFunc(value, unicode.IsSpace) {
		return fail("branch name cannot contain whitespace")
	}
	return ok()
}
