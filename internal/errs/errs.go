package errs

import "net/http"

// Kind classifies a domain error. The error translator switches on the
// attached status, never on message text.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindAuth
	KindForbidden
	KindInternal
)

// Error is a domain error carrying an explicit HTTP status. The status is
// part of the error, not derived from the message: some messages map to a
// status their kind would not suggest (an ownership violation is forbidden
// in nature but has always been answered with 401).
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string { return e.Message }

// New builds an error with an explicit kind and status.
func New(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

// Validation reports malformed input with per-field messages.
func Validation(fields map[string][]string) *Error {
	return &Error{
		Kind:    KindValidation,
		Status:  http.StatusBadRequest,
		Message: "Invalid input",
		Fields:  fields,
	}
}

// NotFound reports a missing entity.
func NotFound(message string) *Error {
	return New(KindNotFound, http.StatusNotFound, message)
}

// Forbidden reports a business-rule violation.
func Forbidden(message string) *Error {
	return New(KindForbidden, http.StatusForbidden, message)
}
