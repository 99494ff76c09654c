package validator

import "fmt"

// ValidationResult is the outcome of a single check.
// Error is set only when Valid is false.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func ok() ValidationResult {
	return ValidationResult{Valid: true}
}

func fail(format string, args ...any) ValidationResult {
	return ValidationResult{Valid: false, Error: fmt.Sprintf(format, args...)}
}

// Err returns nil for a valid result, otherwise an error wrapping ErrInvalidFormat.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidFormat, r.Error)
}

// Rule adapts the result into a field-level Rule so several results
// can be aggregated with Apply.
func (r ValidationResult) Rule(field, key string) Rule {
	return Rule{
		Check: func() bool {
			return r.Valid
		},
		Error: ValidationError{
			Field:   field,
			Message: r.Error,
			Key:     key,
		},
	}
}
