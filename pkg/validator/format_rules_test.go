package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputcheck/pkg/validator"
)

func TestValidateURL(t *testing.T) {
	t.Run("valid URLs", func(t *testing.T) {
		validURLs := []string{
			"http://example.com",
			"https://example.com",
			"https://www.example.com/path",
			"https://example.com:8080",
			"https://example.com/path?query=value",
			"https://example.com/path#fragment",
			"http://localhost:3000",
			"HTTPS://EXAMPLE.COM",
		}

		for _, url := range validURLs {
			res := validator.ValidateURL(url)
			assert.True(t, res.Valid, "URL should be valid: %s", url)
			assert.Empty(t, res.Error)
		}
	})

	t.Run("malformed URLs", func(t *testing.T) {
		invalidURLs := []string{
			"",
			"   ",
			"not-a-url",
			"example.com",
			"://example.com",
			"http://",
			"http://[::1",
		}

		for _, url := range invalidURLs {
			res := validator.ValidateURL(url)
			assert.False(t, res.Valid, "URL should be invalid: %q", url)
			assert.Equal(t, "invalid URL format", res.Error)
		}
	})

	t.Run("non http schemes", func(t *testing.T) {
		schemes := []string{
			"ftp://files.example.com",
			"file:///etc/passwd",
			"ws://example.com/socket",
			"mailto:user@example.com",
		}

		for _, url := range schemes {
			res := validator.ValidateURL(url)
			assert.False(t, res.Valid, "URL should be invalid: %s", url)
			assert.Contains(t, res.Error, "http or https")
		}
	})
}

func TestValidateEmail(t *testing.T) {
	t.Run("valid emails", func(t *testing.T) {
		validEmails := []string{
			"test@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"1234567890@example.com",
			"email@example-one.com",
			"_______@example.com",
		}

		for _, email := range validEmails {
			res := validator.ValidateEmail(email)
			assert.True(t, res.Valid, "Email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalidEmails := []string{
			"plainaddress",
			"@missinglocal.com",
			"missing@",
			"missing@domain",
			"two@@example.com",
			"a@b@example.com",
			"spaces @domain.com",
			"user@domain.",
		}

		for _, email := range invalidEmails {
			res := validator.ValidateEmail(email)
			assert.False(t, res.Valid, "Email should be invalid: %s", email)
			assert.Equal(t, "invalid email format", res.Error)
		}
	})

	t.Run("empty email", func(t *testing.T) {
		res := validator.ValidateEmail("")
		assert.False(t, res.Valid)
		assert.Equal(t, "email is required", res.Error)
	})
}
