package query

import (
	"errors"
	"math"
	"strings"

	"github.com/kailas-cloud/storefront/internal/domain"
)

var (
	// ErrEmptyField signals a query that names no field.
	ErrEmptyField = errors.New("field is required")
	// ErrEmptyValue signals an exact-match query with a blank value.
	ErrEmptyValue = errors.New("value is required")
)

// Kind names a query variant. It doubles as a metrics label.
type Kind string

// Query kinds.
const (
	KindTerm   Kind = "term"
	KindTerms  Kind = "terms"
	KindPrefix Kind = "prefix"
	KindRange  Kind = "range"
)

// Spec is one of Term, Terms, Prefix or Range.
type Spec interface {
	Kind() Kind
	// FieldName returns the base field the query targets, without any sub-field suffix.
	FieldName() string
	Validate() error
	sealed()
}

// Term matches documents whose field equals Value exactly.
// A nil CaseSensitive defers to the repository default.
type Term struct {
	Field         string
	Value         string
	CaseSensitive *bool
}

// Terms matches documents whose field equals any of Values.
type Terms struct {
	Field  string
	Values []string
}

// Prefix matches documents whose field starts with Prefix. An empty prefix matches all.
type Prefix struct {
	Field  string
	Prefix string
}

// Range matches documents whose numeric field lies within [Lower, Upper].
// A nil bound is unbounded on that side.
type Range struct {
	Field string
	Lower *float64
	Upper *float64
}

// NewTerm builds a Term that uses the repository case-sensitivity default.
func NewTerm(field, value string) Term {
	return Term{Field: field, Value: value}
}

// NewCaseSensitiveTerm builds a Term with an explicit case-sensitivity intent.
func NewCaseSensitiveTerm(field, value string, caseSensitive bool) Term {
	return Term{Field: field, Value: value, CaseSensitive: &caseSensitive}
}

// Between builds a Range with both bounds set.
func Between(field string, lower, upper float64) Range {
	return Range{Field: field, Lower: &lower, Upper: &upper}
}

// AtLeast builds a Range with only a lower bound.
func AtLeast(field string, lower float64) Range {
	return Range{Field: field, Lower: &lower}
}

// AtMost builds a Range with only an upper bound.
func AtMost(field string, upper float64) Range {
	return Range{Field: field, Upper: &upper}
}

func (Term) Kind() Kind   { return KindTerm }
func (Terms) Kind() Kind  { return KindTerms }
func (Prefix) Kind() Kind { return KindPrefix }
func (Range) Kind() Kind  { return KindRange }

func (q Term) FieldName() string   { return q.Field }
func (q Terms) FieldName() string  { return q.Field }
func (q Prefix) FieldName() string { return q.Field }
func (q Range) FieldName() string  { return q.Field }

func (Term) sealed()   {}
func (Terms) sealed()  {}
func (Prefix) sealed() {}
func (Range) sealed()  {}

// Validate checks the field name and rejects a blank value.
func (q Term) Validate() error {
	if err := validateField(q.Field); err != nil {
		return err
	}
	return validateValue(q.Value)
}

// Validate checks the field name and rejects blank values. No values at all is valid.
func (q Terms) Validate() error {
	if err := validateField(q.Field); err != nil {
		return err
	}
	for _, v := range q.Values {
		if err := validateValue(v); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the field name.
func (q Prefix) Validate() error { return validateField(q.Field) }

// Validate checks the field name and rejects NaN bounds and a lower bound above
// the upper bound.
func (q Range) Validate() error {
	if err := validateField(q.Field); err != nil {
		return err
	}
	lower, upper := math.Inf(-1), math.Inf(1)
	if q.Lower != nil {
		lower = *q.Lower
	}
	if q.Upper != nil {
		upper = *q.Upper
	}
	if !(lower <= upper) {
		return domain.NewInvalidRange(q.Field, lower, upper)
	}
	return nil
}

// Distinct returns Values with duplicates removed, keeping first-seen order.
func (q Terms) Distinct() []string {
	seen := make(map[string]struct{}, len(q.Values))
	out := make([]string, 0, len(q.Values))
	for _, v := range q.Values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Rejected reports whether err is a query validation failure rather than an
// engine fault, and returns the message to show the caller.
func Rejected(err error) (string, bool) {
	var rangeErr *domain.InvalidRangeError
	if errors.As(err, &rangeErr) {
		return rangeErr.Error(), true
	}
	for _, sentinel := range []error{ErrEmptyField, ErrEmptyValue} {
		if errors.Is(err, sentinel) {
			return sentinel.Error(), true
		}
	}
	return "", false
}

func validateField(field string) error {
	if strings.TrimSpace(field) == "" {
		return ErrEmptyField
	}
	return nil
}

func validateValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmptyValue
	}
	return nil
}
