package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"FirstName":      "First name",
	"LastName":       "Last name",
	"Username":       "Username",
	"Email":          "Email",
	"Password":       "Password",
	"Role":           "Role",
	"Title":          "Title",
	"Description":    "Description",
	"Location":       "Location",
	"EmploymentType": "Employment type",
	"Deadline":       "Deadline",
	"CoverLetter":    "Cover letter",
	"Status":         "Status",
	"Evaluation":     "Evaluation",
}

func label(field string) string {
	if l, ok := FieldLabels[field]; ok {
		return l
	}
	return field
}

// message renders a single tag violation as a human-readable sentence
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label(fe.Field()))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label(fe.Field()))
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label(fe.Field()), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label(fe.Field()), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label(fe.Field()), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "future":
		return fmt.Sprintf("%s must be in the future", label(fe.Field()))
	case "valid_name":
		return fmt.Sprintf("%s contains invalid characters", label(fe.Field()))
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label(fe.Field()), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", label(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label(fe.Field()))
	}
}

// FormatError converts a binding error into a client-facing message.
// Non-validator errors (malformed JSON etc.) pass through unchanged.
func FormatError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return strings.Join(msgs, "; ")
}
