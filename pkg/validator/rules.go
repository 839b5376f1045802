package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// MaxLenString validates that a string does not exceed max characters.
// Length is counted in runes, not bytes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// InList validates that a value is one of the allowed values.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", allowed),
		},
	}
}

// Numeric covers the built-in numeric types accepted by NumericRange.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumericRange validates that value lies within [min, max].
func NumericRange[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		},
	}
}

// TimeOfDay validates a wall-clock time in 24h "HH:MM" format.
func TimeOfDay(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) != 5 || value[2] != ':' {
				return false
			}
			h := int(value[0]-'0')*10 + int(value[1]-'0')
			m := int(value[3]-'0')*10 + int(value[4]-'0')
			for _, c := range []byte{value[0], value[1], value[3], value[4]} {
				if c < '0' || c > '9' {
					return false
				}
			}
			return h >= 0 && h <= 23 && m >= 0 && m <= 59
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a time in HH:MM format",
		},
	}
}
