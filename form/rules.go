package form

import (
	"fmt"
	"regexp"
	"strings"
)

// Field names used by the contact form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Deliberately loose: catches empty local parts, missing '@', and
// domains without a dot, nothing more.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Constraint is the field-specific check applied after the required
// check, and only to non-empty values.
type Constraint int

const (
	ConstraintNone Constraint = iota
	ConstraintMinLength
	ConstraintEmail
)

// FieldRule describes how a single form field is validated.
type FieldRule struct {
	Name       string
	Label      string
	Required   bool
	Constraint Constraint
	MinLength  int
}

// DefaultRules returns the contact form's rule table in display order.
func DefaultRules() []FieldRule {
	return []FieldRule{
		{Name: FieldName, Label: "Name", Required: true, Constraint: ConstraintMinLength, MinLength: 2},
		{Name: FieldEmail, Label: "Email", Required: true, Constraint: ConstraintEmail},
		{Name: FieldMessage, Label: "Message", Required: true, Constraint: ConstraintMinLength, MinLength: 10},
	}
}

// Check validates a raw value against the rule. It returns an empty
// string when the value passes, otherwise the message for the first
// failing check. Values are trimmed before any rule is applied.
func (r FieldRule) Check(raw string) string {
	value := strings.TrimSpace(raw)

	if r.Required && value == "" {
		return fmt.Sprintf("%s is required.", r.Label)
	}
	if value == "" {
		return ""
	}

	switch r.Constraint {
	case ConstraintMinLength:
		if len([]rune(value)) < r.MinLength {
			return fmt.Sprintf("%s must be at least %d characters.", r.Label, r.MinLength)
		}
	case ConstraintEmail:
		if !emailPattern.MatchString(value) {
			return "Please enter a valid email address."
		}
	}

	return ""
}
