// Package validator provides stateless format checks for common scalar inputs
// found in configuration files, forms and CLI flags: URLs, email addresses,
// API keys, git branch names, file paths, HH:MM times and day-of-week indexes.
//
// Every check is a pure function that returns a ValidationResult. Invalid
// input is never reported through a panic or an error return; the result
// carries Valid=false together with a human-readable message instead.
//
// # Usage
//
//	if res := validator.ValidateURL(cfg.ServerURL); !res.Valid {
//	    return fmt.Errorf("server url: %s", res.Error)
//	}
//
// Results of several checks can be collected into field-level errors with
// Rule and Apply:
//
//	err := validator.Apply(
//	    validator.ValidateEmail(email).Rule("email", validator.Key(validator.RuleEmail)),
//	    validator.ValidateTimeFormat(at).Rule("time", validator.Key(validator.RuleTime)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Details() groups messages by field
//	}
//
// Check and CheckString run a rule by its registered name, which is how the
// HTTP API and the CLI dispatch requests.
//
// There is no package state apart from read-only compiled patterns, so every
// function is safe for concurrent use.
package validator
