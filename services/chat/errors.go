package chat

import "fmt"

// ValidationError reports a single rejected field with a human-readable
// reason the assistant can echo back verbatim.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// PersistenceError wraps a storage failure during booking finalization. The
// session stays in awaiting-confirmation so a repeated "yes" retries the
// identical record.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
