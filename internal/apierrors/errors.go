// Package apierrors defines caller-visible API failures with an HTTP
// status and a public message. Anything that is not an *APIError is
// treated as an internal fault and never reaches the client verbatim.
package apierrors

import "net/http"

// APIError is an error with a public message safe to return to clients.
type APIError struct {
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Validation failures, conflicts and dependency failures are "soft":
// the original API reports them with HTTP 200 and success=false.

// NewValidationError reports bad or missing input.
func NewValidationError(message string) *APIError {
	return &APIError{HTTPStatus: http.StatusOK, Message: message}
}

// NewConflictError reports a duplicate username, email or subscription.
func NewConflictError(message string) *APIError {
	return &APIError{HTTPStatus: http.StatusOK, Message: message}
}

// NewDependencyError reports an unavailable collaborator (mail relay).
func NewDependencyError(message string) *APIError {
	return &APIError{HTTPStatus: http.StatusOK, Message: message}
}

// NewAuthError reports a missing, invalid or insufficient credential.
func NewAuthError(message string) *APIError {
	return &APIError{HTTPStatus: http.StatusUnauthorized, Message: message}
}

// NewNotFoundError reports an absent resource or unknown action.
func NewNotFoundError(message string) *APIError {
	return &APIError{HTTPStatus: http.StatusNotFound, Message: message}
}
