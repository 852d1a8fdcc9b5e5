package resource

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is wrapped by every [ValidationError].
	ErrValidation = errors.New("validation failed")

	// ErrConflict is wrapped by every [ConflictError].
	ErrConflict = errors.New("conflict")

	// ErrEmptyUpdate is returned when an update payload carries no
	// recognized field.
	ErrEmptyUpdate = errors.New("no valid fields to update")

	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrStorage wraps gateway failures. Its detail is for logs only.
	ErrStorage = errors.New("storage failure")
)

// ValidationError names the offending field and the rule it broke,
// e.g. "stock must be a non-negative integer".
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Rule)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConflictKind tells apart the reasons a write can conflict with other
// records.
type ConflictKind int

const (
	// ConflictDuplicate is raised by the uniqueness pre-check.
	ConflictDuplicate ConflictKind = iota + 1

	// ConflictReferenced is raised when a delete is blocked by records
	// pointing at the target.
	ConflictReferenced

	// ConflictConstraint is raised when a unique index rejected a write that
	// had passed the pre-check.
	ConflictConstraint
)

// ConflictError reports a write rejected because of other records.
type ConflictError struct {
	Entity string
	Field  string
	Value  any
	Kind   ConflictKind
}

func (e *ConflictError) Error() string {
	switch e.Kind {
	case ConflictDuplicate:
		return fmt.Sprintf("a %s with %s %q already exists", e.Entity, e.Field, fmt.Sprint(e.Value))
	case ConflictReferenced:
		return fmt.Sprintf("the %s is referenced by other records and cannot be deleted", e.Entity)
	default:
		return fmt.Sprintf("the %s conflicts with an existing record", e.Entity)
	}
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
