package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidFormat is wrapped by ValidationResult.Err for every failed check.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrUnknownRule is returned by Check when no rule is registered under the given name.
	ErrUnknownRule = errors.New("unknown validation rule")
)
