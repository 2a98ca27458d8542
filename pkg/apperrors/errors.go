package apperrors

import "errors"

// ErrStoreInvariant signals that a read-after-write returned nothing.
// That only happens when the storage engine is malfunctioning.
var ErrStoreInvariant = errors.New("storage returned no row after insert")

// ValidationError is a user-correctable input error, rendered as a 400.
// Hint carries optional guidance for the caller.
type ValidationError struct {
	Message string
	Hint    string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

func NewValidationWithHint(message, hint string) error {
	return &ValidationError{Message: message, Hint: hint}
}

// StoreError wraps a failure of the underlying storage engine, rendered as a 500.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStore(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
