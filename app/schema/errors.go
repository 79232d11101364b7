package schema

import (
	"fmt"
	"strings"
)

// ValidationError reports a payload field that failed its validation rule.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	field := strings.ToLower(e.Field)
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s is not a valid email address", field)
	case "min":
		return fmt.Sprintf("%s is too short", field)
	case "max":
		return fmt.Sprintf("%s is too long", field)
	default:
		return fmt.Sprintf("%s failed validation rule %q", field, e.Rule)
	}
}
