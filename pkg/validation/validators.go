package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Allow letters, numbers, spaces, and common name punctuation: . ' -
var nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("future", Future)
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// Future validates that a time.Time field lies strictly after now. Used for
// job deadlines, which must be in the future at creation time.
func Future(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	if t.IsZero() {
		return true // Optional, use required if needed
	}
	return t.After(time.Now())
}
