package query

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/kailas-cloud/storefront/internal/domain"
)

func TestValidate_EmptyField(t *testing.T) {
	specs := []Spec{
		NewTerm("", "x"),
		Terms{Field: " ", Values: []string{"a"}},
		Prefix{Prefix: "p"},
		Between("", 1, 2),
	}
	for _, s := range specs {
		t.Run(string(s.Kind()), func(t *testing.T) {
			if err := s.Validate(); !errors.Is(err, ErrEmptyField) {
				t.Errorf("expected ErrEmptyField, got %v", err)
			}
		})
	}
}

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		wantErr bool
	}{
		{"both bounds", Between("price", 10, 50), false},
		{"equal bounds", Between("price", 10, 10), false},
		{"inverted", Between("price", 50, 10), true},
		{"lower only", AtLeast("price", 50), false},
		{"upper only", AtMost("price", 10), false},
		{"unbounded", Range{Field: "price"}, false},
		{"nan lower", Range{Field: "price", Lower: floatPtr(math.NaN()), Upper: floatPtr(5)}, true},
		{"nan upper only", Range{Field: "price", Upper: floatPtr(math.NaN())}, true},
		{"nan lower only", Range{Field: "price", Lower: floatPtr(math.NaN())}, true},
		{"infinite bounds", Between("price", math.Inf(-1), math.Inf(1)), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.r.Validate()
			if tc.wantErr {
				if !errors.Is(err, domain.ErrInvalidRange) {
					t.Errorf("expected ErrInvalidRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_EmptyValue(t *testing.T) {
	specs := []Spec{
		NewTerm("customer_first_name", ""),
		NewCaseSensitiveTerm("customer_first_name", "  ", true),
		Terms{Field: "category", Values: []string{"shoes", ""}},
	}
	for _, s := range specs {
		t.Run(string(s.Kind()), func(t *testing.T) {
			if err := s.Validate(); !errors.Is(err, ErrEmptyValue) {
				t.Errorf("expected ErrEmptyValue, got %v", err)
			}
		})
	}

	if err := (Terms{Field: "category"}).Validate(); err != nil {
		t.Errorf("no values should be valid, got %v", err)
	}
	if err := (Prefix{Field: "name"}).Validate(); err != nil {
		t.Errorf("empty prefix should be valid, got %v", err)
	}
}

func TestRangeValidate_NaNMessage(t *testing.T) {
	err := Range{Field: "price", Lower: floatPtr(math.NaN())}.Validate()
	msg, ok := Rejected(err)
	if !ok {
		t.Fatalf("NaN bound should be rejected, got %v", err)
	}
	if msg != "invalid range: price bounds must be numbers, got NaN and +Inf" {
		t.Errorf("message = %q", msg)
	}
}

func TestTermsDistinct(t *testing.T) {
	q := Terms{Field: "category", Values: []string{"shoes", "bags", "shoes", "hats", "bags"}}
	got := q.Distinct()
	want := []string{"shoes", "bags", "hats"}
	if len(got) != len(want) {
		t.Fatalf("Distinct() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Distinct()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewCaseSensitiveTerm(t *testing.T) {
	q := NewCaseSensitiveTerm("customer_first_name", "Mary", true)
	if q.CaseSensitive == nil || !*q.CaseSensitive {
		t.Fatal("expected explicit case-sensitive intent")
	}
	if NewTerm("f", "v").CaseSensitive != nil {
		t.Error("NewTerm should leave case sensitivity unspecified")
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		spec Spec
		want Kind
	}{
		{NewTerm("f", "v"), KindTerm},
		{Terms{Field: "f"}, KindTerms},
		{Prefix{Field: "f"}, KindPrefix},
		{Range{Field: "f"}, KindRange},
	}
	for _, tc := range tests {
		if got := tc.spec.Kind(); got != tc.want {
			t.Errorf("Kind() = %q, want %q", got, tc.want)
		}
		if tc.spec.FieldName() != "f" {
			t.Errorf("FieldName() = %q", tc.spec.FieldName())
		}
	}
}

func TestRejected(t *testing.T) {
	rangeErr := fmt.Errorf("translate: %w", Between("price", 9, 1).Validate())
	if msg, ok := Rejected(rangeErr); !ok || msg == "" {
		t.Errorf("range error should be rejected with a message, got %q, %v", msg, ok)
	}
	if msg, ok := Rejected(fmt.Errorf("wrap: %w", ErrEmptyField)); !ok || msg != "field is required" {
		t.Errorf("empty field should be rejected, got %q, %v", msg, ok)
	}
	if msg, ok := Rejected(NewTerm("f", "").Validate()); !ok || msg != "value is required" {
		t.Errorf("empty value should be rejected, got %q, %v", msg, ok)
	}
	engineErr := &domain.EngineQueryError{Collection: "c", Err: context.Canceled}
	if _, ok := Rejected(engineErr); ok {
		t.Error("engine faults must not be rejected as bad input")
	}
}

func floatPtr(f float64) *float64 { return &f }
