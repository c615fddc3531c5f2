package domain

import (
	"fmt"
	"strings"
)

// FieldError represents a single failed field in a payload.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError lists every failed field of a create or update payload.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
