package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestInvalidRangeError(t *testing.T) {
	err := NewInvalidRange("taxful_total_price", 50, 10)

	if !errors.Is(err, ErrInvalidRange) {
		t.Error("expected errors.Is(err, ErrInvalidRange)")
	}

	var rangeErr *InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatal("expected errors.As to find *InvalidRangeError")
	}
	if rangeErr.Lower != 50 || rangeErr.Upper != 10 {
		t.Errorf("unexpected bounds: %+v", rangeErr)
	}
	if !strings.Contains(err.Error(), "taxful_total_price") {
		t.Errorf("message should name the field: %q", err.Error())
	}
}

func TestEngineQueryError(t *testing.T) {
	cause := context.DeadlineExceeded
	err := fmt.Errorf("execute term: %w", &EngineQueryError{
		Collection: "ecommerce",
		Query:      "@customer_first_name_keyword:{Mary}",
		Err:        cause,
	})

	if !errors.Is(err, ErrEngineQuery) {
		t.Error("expected errors.Is(err, ErrEngineQuery)")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected cause to be reachable through Unwrap")
	}
	if errors.Is(err, ErrInvalidRange) {
		t.Error("engine error must not match ErrInvalidRange")
	}

	var engineErr *EngineQueryError
	if !errors.As(err, &engineErr) {
		t.Fatal("expected errors.As to find *EngineQueryError")
	}
	if engineErr.Collection != "ecommerce" {
		t.Errorf("Collection = %q", engineErr.Collection)
	}
}
