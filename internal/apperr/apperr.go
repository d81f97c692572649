package apperr

import (
	"fmt"
	"net/http"
)

// Error is an application error carrying the HTTP status it maps to.
// The model layer returns these; the route layer forwards them to a
// single responder.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// BadRequest marks malformed input, schema violations and duplicate
// unique-key inserts.
func BadRequest(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized marks failed credential checks and identity mismatches.
func Unauthorized(format string, args ...any) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// NotFound marks an absent referenced id.
func NotFound(format string, args ...any) *Error {
	return &Error{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}
