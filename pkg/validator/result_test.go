package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputcheck/pkg/validator"
)

func TestValidationResult_Err(t *testing.T) {
	t.Run("nil for valid result", func(t *testing.T) {
		res := validator.ValidateFilePath("/tmp/repo")
		assert.NoError(t, res.Err())
	})

	t.Run("wraps ErrInvalidFormat for invalid result", func(t *testing.T) {
		res := validator.ValidateFilePath("   ")
		err := res.Err()
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrInvalidFormat))
		assert.Contains(t, err.Error(), "file path is required")
	})
}

func TestValidationResult_Rule(t *testing.T) {
	t.Run("valid result passes Apply", func(t *testing.T) {
		rule := validator.ValidateTimeFormat("09:00").Rule("time", validator.Key(validator.RuleTime))
		assert.NoError(t, validator.Apply(rule))
	})

	t.Run("invalid results are aggregated", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidateTimeFormat("9:00").Rule("time", validator.Key(validator.RuleTime)),
			validator.ValidateBranchName("main").Rule("branch", validator.Key(validator.RuleBranch)),
			validator.ValidateEmail("nope").Rule("email", validator.Key(validator.RuleEmail)),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"time", "email"}, verrs.Fields())
		assert.Equal(t, "validation.time", verrs[0].Key)
		assert.Equal(t, []string{"invalid email format"}, verrs.Get("email"))
	})
}

func TestValidationResult_Invariant(t *testing.T) {
	results := []validator.ValidationResult{
		validator.ValidateURL("https://example.com"),
		validator.ValidateURL("ftp://example.com"),
		validator.ValidateEmail("a@b.co"),
		validator.ValidateEmail(""),
		validator.ValidateAPIKey("0123456789"),
		validator.ValidateAPIKey("short"),
		validator.ValidateBranchName("main"),
		validator.ValidateBranchName(".hidden"),
		validator.ValidateFilePath("a"),
		validator.ValidateFilePath(""),
		validator.ValidateTimeFormat("00:00"),
		validator.ValidateTimeFormat("24:00"),
		validator.ValidateDayOfWeek(6),
		validator.ValidateDayOfWeek("6"),
	}

	for _, res := range results {
		assert.Equal(t, res.Valid, res.Error == "", "error must be set only for invalid results: %+v", res)
	}
}
