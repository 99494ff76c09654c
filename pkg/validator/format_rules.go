package validator

import (
	"net/url"
	"regexp"
	"strings"
)

// emailRegex requires a local part, a single @ and a dotted domain, without whitespace.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateURL reports whether value is an absolute http or https URL.
func ValidateURL(value string) ValidationResult {
	if strings.TrimSpace(value) == "" {
		return fail("invalid URL format")
	}

	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || !u.IsAbs() {
		return fail("invalid URL format")
	}

	// url.Parse lower-cases the scheme
	if u.Scheme != "http" && u.Scheme != "https" {
		return fail("URL must use http or https protocol")
	}

	if u.Host == "" {
		return fail("invalid URL format")
	}

	return ok()
}

// ValidateEmail reports whether value looks like local@domain.tld.
func ValidateEmail(value string) ValidationResult {
	if value == "" {
		return fail("email is required")
	}
	if !emailRegex.MatchString(value) {
		return fail("invalid email format")
	}
	return ok()
}
