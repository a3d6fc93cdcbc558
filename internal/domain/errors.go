package domain

import (
	"errors"
	"fmt"
)

// ErrRentalNotFound is returned when an operation references a rental id
// that does not exist in the store.
var ErrRentalNotFound = errors.New("rental not found")

// ValidationError signals malformed or out-of-range input: missing customer
// name, unsupported duration, item count out of range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidStateError signals an operation that is not permitted in the
// rental's current lifecycle state, e.g. ending an already-ended rental.
type InvalidStateError struct {
	Op       string
	RentalID int32
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s rental %d: rental already ended", e.Op, e.RentalID)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsInvalidState(err error) bool {
	var s *InvalidStateError
	return errors.As(err, &s)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrRentalNotFound)
}
