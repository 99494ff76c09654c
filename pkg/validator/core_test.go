package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputcheck/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "email is required"})
		assert.Equal(t, "validation failed: email: email is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "branch", Message: "branch name is required"})
		errs.Add(validator.ValidationError{Field: "time", Message: "bad time"})
		assert.Equal(t, "validation failed: branch: branch name is required; time: bad time", errs.Error())
	})
}

func TestValidationErrors_Helpers(t *testing.T) {
	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())
	assert.Nil(t, errs.Details())

	errs.Add(validator.ValidationError{Field: "api_key", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "api_key", Message: "still too short"})
	errs.Add(validator.ValidationError{Field: "url", Message: "bad scheme"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("api_key"))
	assert.False(t, errs.Has("email"))
	assert.Equal(t, []string{"too short", "still too short"}, errs.Get("api_key"))
	assert.Nil(t, errs.Get("email"))
	assert.Equal(t, []string{"api_key", "url"}, errs.Fields())
	assert.Equal(t, map[string][]string{
		"api_key": {"too short", "still too short"},
		"url":     {"bad scheme"},
	}, errs.Details())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidateURL("https://example.com").Rule("url", "validation.url"),
			validator.ValidateFilePath("/srv").Rule("path", "validation.file_path"),
		)
		assert.NoError(t, err)
	})

	t.Run("returns nil with no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("skips rules without a check", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.Rule{}))
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidateURL("nope").Rule("url", "validation.url"),
			validator.ValidateDayOfWeek(9).Rule("weekday", "validation.day_of_week"),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "url", verrs[0].Field)
		assert.Equal(t, "weekday", verrs[1].Field)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		inner := validator.Apply(validator.ValidateEmail("x").Rule("email", "validation.email"))
		err := fmt.Errorf("load settings: %w", inner)

		assert.True(t, validator.IsValidationError(err))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "email", verrs[0].Field)
	})
}
