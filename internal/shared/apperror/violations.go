package apperror

import "net/http"

// FieldViolation describes a single broken data invariant. Domain rules
// collect every violation in one pass so a caller can fix the whole payload
// in a single round trip.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ErrUnprocessable is the base error for payloads that bind fine but break
// domain rules. NewValidation attaches the concrete violations to a copy.
var ErrUnprocessable = New(
	CodeInvalidInput,
	"One or more fields are invalid",
	http.StatusUnprocessableEntity,
)

// NewValidation builds the caller-facing error for a non-empty violation set.
func NewValidation(violations []FieldViolation) *AppError {
	return ErrUnprocessable.WithDetails(violations)
}
