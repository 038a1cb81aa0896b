package response

import "net/http"

// Status classifies the outcome of an operation. Values equal the HTTP codes
// the boundary renders them as.
type Status int

// Outcome statuses.
const (
	OK            Status = http.StatusOK
	Created       Status = http.StatusCreated
	NoContent     Status = http.StatusNoContent
	BadRequest    Status = http.StatusBadRequest
	Unauthorized  Status = http.StatusUnauthorized
	NotFound      Status = http.StatusNotFound
	InternalError Status = http.StatusInternalServerError
)

func (s Status) String() string {
	if text := http.StatusText(int(s)); text != "" {
		return text
	}
	return "Unknown Status"
}

// IsSuccess reports whether s is a 2xx outcome.
func (s Status) IsSuccess() bool { return s >= 200 && s < 300 }
