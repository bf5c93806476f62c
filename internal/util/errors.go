// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Common application-specific errors.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input provided")
	ErrDuplicateEntry      = errors.New("duplicate entry")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrNotImplemented      = errors.New("not implemented")
	ErrMethodNotAllowed    = errors.New("method not allowed")
)

// IsError reports whether any error in err's chain matches target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}

// InvalidInput wraps ErrInvalidInput with a formatted reason.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NotFoundError is returned when a lookup by key finds no row.
type NotFoundError struct {
	Entity string
	Keys   []int64
}

func (e *NotFoundError) Error() string {
	keys := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		keys[i] = fmt.Sprint(k)
	}
	return fmt.Sprintf("%s %s not found", e.Entity, strings.Join(keys, "/"))
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConstraintKind names the class of storage constraint that was violated.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintNotNull    ConstraintKind = "not_null"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintCheck      ConstraintKind = "check"
)

// ConstraintError carries the storage constraint a write violated.
type ConstraintError struct {
	Kind       ConstraintKind
	Table      string
	Constraint string // name of the constraint, or the column for not-null violations
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s constraint %q violated on %s", e.Kind, e.Constraint, e.Table)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// Is matches ErrConstraintViolation for every kind and ErrDuplicateEntry for unique violations.
func (e *ConstraintError) Is(target error) bool {
	switch target {
	case ErrConstraintViolation:
		return true
	case ErrDuplicateEntry:
		return e.Kind == ConstraintUnique
	}
	return false
}

// MethodNotAllowedError is returned by a resource for an HTTP method outside its allowed set.
type MethodNotAllowedError struct {
	Method  string
	Allowed []string
}

func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("method %s not allowed, expected one of %s", e.Method, strings.Join(e.Allowed, ", "))
}

func (e *MethodNotAllowedError) Is(target error) bool {
	return target == ErrMethodNotAllowed
}
