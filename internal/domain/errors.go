package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRange signals a numeric range with a NaN bound or a lower bound above its upper bound.
	ErrInvalidRange = errors.New("invalid range")
	// ErrEngineQuery signals a failed search engine query.
	ErrEngineQuery = errors.New("engine query failed")
)

// InvalidRangeError wraps ErrInvalidRange with the offending bounds.
// An open bound is reported as the matching infinity.
type InvalidRangeError struct {
	Field string
	Lower float64
	Upper float64
}

func (e *InvalidRangeError) Error() string {
	if math.IsNaN(e.Lower) || math.IsNaN(e.Upper) {
		return fmt.Sprintf("%s: %s bounds must be numbers, got %g and %g",
			ErrInvalidRange.Error(), e.Field, e.Lower, e.Upper)
	}
	return fmt.Sprintf("%s: %s lower bound %g is greater than upper bound %g",
		ErrInvalidRange.Error(), e.Field, e.Lower, e.Upper)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// NewInvalidRange creates an invalid range error.
func NewInvalidRange(field string, lower, upper float64) error {
	return &InvalidRangeError{Field: field, Lower: lower, Upper: upper}
}

// EngineQueryError reports an engine or transport fault for a query against a collection.
// It matches ErrEngineQuery and unwraps to the underlying cause.
type EngineQueryError struct {
	Collection string
	Query      string
	Err        error
}

func (e *EngineQueryError) Error() string {
	return fmt.Sprintf("%s: collection %s, query %q: %v", ErrEngineQuery.Error(), e.Collection, e.Query, e.Err)
}

func (e *EngineQueryError) Unwrap() error { return e.Err }

// Is reports ErrEngineQuery as a match in addition to the wrapped cause.
func (e *EngineQueryError) Is(target error) bool { return target == ErrEngineQuery }
