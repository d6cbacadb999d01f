package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound reports a 404 from the server: the user or recipe the call
// addressed no longer exists.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized reports a 401: the supplied credential was rejected.
var ErrUnauthorized = errors.New("incorrect credentials")

// ConflictError reports a 400 carrying the server's own message, typically a
// duplicate or invalid username on signup.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message == "" {
		return "request rejected by server"
	}
	return e.Message
}

// UnexpectedStatusError reports any status code outside the endpoint's
// documented contract.
type UnexpectedStatusError struct {
	Code int
	Body string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("server returned status %d", e.Code)
}

// NetworkError reports a transport-level failure: connection refused, DNS,
// or timeout. The server never saw the request, or the response never came.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("server unreachable: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// statusError maps a non-success status code onto the outcome taxonomy.
func statusError(code int, body string) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadRequest:
		return &ConflictError{Message: strings.TrimSpace(body)}
	default:
		return &UnexpectedStatusError{Code: code, Body: strings.TrimSpace(body)}
	}
}
