package validator

import (
	"fmt"
	"slices"
	"strconv"
)

// Rule names understood by Check and CheckString.
const (
	RuleURL       = "url"
	RuleEmail     = "email"
	RuleAPIKey    = "api_key"
	RuleBranch    = "branch"
	RuleFilePath  = "file_path"
	RuleTime      = "time"
	RuleDayOfWeek = "day_of_week"
)

const keyPrefix = "validation."

// CheckOption tunes a by-name check.
type CheckOption func(*checkOptions)

type checkOptions struct {
	minLength int
}

// WithMinLength overrides the API key minimum length. Other rules ignore it.
func WithMinLength(n int) CheckOption {
	return func(o *checkOptions) { o.minLength = n }
}

type checkFunc func(value any, o checkOptions) ValidationResult

var registry = map[string]checkFunc{
	RuleURL:      textRule(ValidateURL),
	RuleEmail:    textRule(ValidateEmail),
	RuleBranch:   textRule(ValidateBranchName),
	RuleFilePath: textRule(ValidateFilePath),
	RuleTime:     textRule(ValidateTimeFormat),
	RuleAPIKey: func(value any, o checkOptions) ValidationResult {
		s, isText := value.(string)
		if !isText {
			return fail("value must be a string")
		}
		return ValidateAPIKeyMinLength(s, o.minLength)
	},
	RuleDayOfWeek: func(value any, _ checkOptions) ValidationResult {
		return ValidateDayOfWeek(value)
	},
}

func textRule(fn func(string) ValidationResult) checkFunc {
	return func(value any, _ checkOptions) ValidationResult {
		s, isText := value.(string)
		if !isText {
			return fail("value must be a string")
		}
		return fn(s)
	}
}

// Rules returns the registered rule names in sorted order.
func Rules() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Key returns the machine-readable error key for a rule name, e.g. "validation.url".
func Key(name string) string {
	return keyPrefix + name
}

// Check runs the rule registered under name against value.
// An unknown name yields ErrUnknownRule; a value of the wrong kind yields an invalid result.
func Check(name string, value any, opts ...CheckOption) (ValidationResult, error) {
	fn, found := registry[name]
	if !found {
		return ValidationResult{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}

	o := checkOptions{minLength: DefaultAPIKeyMinLength}
	for _, opt := range opts {
		opt(&o)
	}

	return fn(value, o), nil
}

// CheckString is Check for text input such as query parameters or CLI flags.
// For day_of_week the text is parsed as a base-10 integer first; text that is
// not a number stays a string and is therefore reported as invalid.
func CheckString(name, value string, opts ...CheckOption) (ValidationResult, error) {
	if name == RuleDayOfWeek {
		if n, err := strconv.Atoi(value); err == nil {
			return Check(name, n, opts...)
		}
	}
	return Check(name, value, opts...)
}
