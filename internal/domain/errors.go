package domain

import "fmt"

// ValidationError reports which identity field failed domain validation.
// It is surfaced to the caller as a client error and never logged as an
// operational fault.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
