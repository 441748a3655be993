package citation

import "fmt"

// ValidationError reports a required field that is missing or malformed at
// construction or post-parse validation time. It always identifies the
// variant and the offending field.
type ValidationError struct {
	Kind   Kind
	Field  string
	Reason string // empty for a plain missing-field error
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s field '%s': %s", e.Kind.Name(), e.Field, e.Reason)
	}
	return fmt.Sprintf("%s requires '%s'; received none", e.Kind.Name(), e.Field)
}

// missingField returns the error for a required field with no value.
func missingField(kind Kind, field string) error {
	return &ValidationError{Kind: kind, Field: field}
}
