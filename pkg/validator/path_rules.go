package validator

import "strings"

// ValidateFilePath only checks that value is not blank; the filesystem is never consulted.
func ValidateFilePath(value string) ValidationResult {
	if strings.TrimSpace(value) == "" {
		return fail("file path is required")
	}
	return ok()
}
