package schema

import (
	"errors"
	"fmt"
)

// ErrFieldNotFound is returned when a field cannot be resolved on an
// entity or its immediate parent.
var ErrFieldNotFound = errors.New("schema: field not found")

// FieldNotFoundError reports which field failed to resolve and on which
// entity.
type FieldNotFoundError struct {
	Entity string
	Field  string
}

// Error returns the error string.
func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("schema: no such field %q on %s", e.Field, e.Entity)
}

// Is reports whether the target error matches FieldNotFoundError.
// This allows errors.Is(err, ErrFieldNotFound) to return true.
func (e *FieldNotFoundError) Is(err error) bool {
	return err == ErrFieldNotFound
}

// IsFieldNotFound returns true if the error is a FieldNotFoundError.
func IsFieldNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *FieldNotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrFieldNotFound)
}
