package validator

import (
	"math"
	"reflect"
	"regexp"
)

// timeRegex matches zero-padded 24h clock times, 00:00 through 23:59.
var timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidateTimeFormat reports whether value is a strict HH:MM time.
func ValidateTimeFormat(value string) ValidationResult {
	if !timeRegex.MatchString(value) {
		return fail("time must be in HH:MM format (00:00-23:59)")
	}
	return ok()
}

// ValidateDayOfWeek reports whether value is an integer between 0 (Sunday) and 6.
//
// Any integer kind is accepted, including named types such as time.Weekday.
// Floats are accepted only when they hold an integral value, which is how
// JSON numbers arrive after decoding. Strings and every other kind are invalid.
func ValidateDayOfWeek(value any) ValidationResult {
	day, isInt := integerValue(value)
	if !isInt || day < 0 || day > 6 {
		return fail("day of week must be an integer between 0 and 6")
	}
	return ok()
}

func integerValue(value any) (int64, bool) {
	if value == nil {
		return 0, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, false
		}
		if f < math.MinInt64 || f > math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}
