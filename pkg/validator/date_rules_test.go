package validator_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputcheck/pkg/validator"
)

func TestValidateTimeFormat(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		for _, v := range []string{"09:00", "23:59", "00:00", "12:30", "19:05"} {
			res := validator.ValidateTimeFormat(v)
			assert.True(t, res.Valid, "Time should be valid: %s", v)
			assert.Empty(t, res.Error)
		}
	})

	t.Run("invalid times", func(t *testing.T) {
		invalid := []string{
			"9:00",
			"25:00",
			"24:00",
			"12:60",
			"not-a-time",
			"",
			"12:5",
			"12:00:00",
			" 12:00",
			"ab:cd",
		}

		for _, v := range invalid {
			res := validator.ValidateTimeFormat(v)
			assert.False(t, res.Valid, "Time should be invalid: %q", v)
			assert.Equal(t, "time must be in HH:MM format (00:00-23:59)", res.Error)
		}
	})
}

func TestValidateDayOfWeek(t *testing.T) {
	t.Run("days zero through six", func(t *testing.T) {
		for day := range 7 {
			assert.True(t, validator.ValidateDayOfWeek(day).Valid, "Day should be valid: %d", day)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, day := range []int{-1, 7, 10} {
			res := validator.ValidateDayOfWeek(day)
			assert.False(t, res.Valid, "Day should be invalid: %d", day)
			assert.Equal(t, "day of week must be an integer between 0 and 6", res.Error)
		}
	})

	t.Run("other integer kinds", func(t *testing.T) {
		assert.True(t, validator.ValidateDayOfWeek(int8(3)).Valid)
		assert.True(t, validator.ValidateDayOfWeek(uint(6)).Valid)
		assert.True(t, validator.ValidateDayOfWeek(int64(0)).Valid)
		assert.True(t, validator.ValidateDayOfWeek(time.Saturday).Valid)
		assert.False(t, validator.ValidateDayOfWeek(uint64(math.MaxUint64)).Valid)
	})

	t.Run("floats", func(t *testing.T) {
		assert.True(t, validator.ValidateDayOfWeek(float64(2)).Valid)
		assert.False(t, validator.ValidateDayOfWeek(2.5).Valid)
		assert.False(t, validator.ValidateDayOfWeek(math.NaN()).Valid)
		assert.False(t, validator.ValidateDayOfWeek(math.Inf(1)).Valid)
	})

	t.Run("non numeric input", func(t *testing.T) {
		for _, v := range []any{"3", "monday", nil, true, []int{1}} {
			res := validator.ValidateDayOfWeek(v)
			assert.False(t, res.Valid, "Day should be invalid: %#v", v)
			assert.NotEmpty(t, res.Error)
		}
	})
}
