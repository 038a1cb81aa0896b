package response

import "encoding/json"

const notConstructed = "envelope not constructed"

// Envelope is the uniform result of a service operation. It holds either data
// (success) or at least one error message (failure), never both.
// The zero value is a failure with InternalError.
type Envelope[T any] struct {
	data      T
	errors    []string
	status    Status
	succeeded bool
}

// Success wraps data with a success status.
func Success[T any](data T, status Status) Envelope[T] {
	return Envelope[T]{data: data, status: status, succeeded: true}
}

// Fail builds a failed envelope. Without messages the status text is used,
// so a failure always carries at least one message.
func Fail[T any](status Status, messages ...string) Envelope[T] {
	errs := make([]string, 0, len(messages))
	for _, m := range messages {
		if m != "" {
			errs = append(errs, m)
		}
	}
	if len(errs) == 0 {
		errs = append(errs, status.String())
	}
	return Envelope[T]{errors: errs, status: status}
}

// IsSuccess reports whether the operation succeeded.
func (e Envelope[T]) IsSuccess() bool { return e.succeeded }

// Data returns the payload. ok is false on failure.
func (e Envelope[T]) Data() (data T, ok bool) {
	if !e.succeeded {
		var zero T
		return zero, false
	}
	return e.data, true
}

// Errors returns a copy of the error messages. It is empty on success.
func (e Envelope[T]) Errors() []string {
	if !e.succeeded && len(e.errors) == 0 {
		return []string{notConstructed}
	}
	out := make([]string, len(e.errors))
	copy(out, e.errors)
	return out
}

// Status returns the outcome status.
func (e Envelope[T]) Status() Status {
	if !e.succeeded && e.status == 0 {
		return InternalError
	}
	return e.status
}

type envelopeJSON[T any] struct {
	Data          *T       `json:"data,omitempty"`
	ErrorMessages []string `json:"errorMessages"`
	IsSuccess     bool     `json:"isSuccess"`
	Status        int      `json:"status"`
}

// MarshalJSON renders the wire shape {data, errorMessages, isSuccess, status}.
func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	out := envelopeJSON[T]{
		ErrorMessages: e.Errors(),
		IsSuccess:     e.succeeded,
		Status:        int(e.Status()),
	}
	if e.succeeded {
		out.Data = &e.data
	}
	return json.Marshal(out)
}
