package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// Validation errors (client side, never reach the network)
	ErrValidationFailed = errors.New("validation failed")

	// Authentication and moderation errors mapped from backend responses
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountPending     = errors.New("account is pending approval")
	ErrAccountDenied      = errors.New("account has been denied")

	// Session errors
	ErrNoSession = errors.New("no active session")

	// Transport errors
	ErrRequestFailed = errors.New("request failed")
)

// User-facing copy keyed by HTTP status code. Screens consume this table
// uniformly instead of branching on status codes inline.
var statusMessages = map[int]string{
	http.StatusUnauthorized: "Invalid credentials.",
	http.StatusForbidden:    "Please wait, your account is under verification. Check your email.",
	http.StatusNotFound:     "Your account is denied. Please contact college management.",
}

// genericMessage is the fallthrough copy for anything not in the table.
const genericMessage = "Server error. Please try again later."

// statusSentinels maps response codes onto the matching sentinel so callers
// can use errors.Is without inspecting numbers.
var statusSentinels = map[int]error{
	http.StatusUnauthorized: ErrInvalidCredentials,
	http.StatusForbidden:    ErrAccountPending,
	http.StatusNotFound:     ErrAccountDenied,
}

// StatusError represents a non-2xx backend response.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// Unwrap maps the status code onto its sentinel, or ErrRequestFailed when the
// code has no dedicated sentinel.
func (e *StatusError) Unwrap() error {
	if sentinel, ok := statusSentinels[e.StatusCode]; ok {
		return sentinel
	}
	return ErrRequestFailed
}

// NewStatusError creates a StatusError for a response code and body.
func NewStatusError(statusCode int, body string) *StatusError {
	return &StatusError{StatusCode: statusCode, Body: body}
}

// ValidationError represents a failed client-side form check. It carries the
// single human-readable message the form surfaces.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap implements errors.Unwrap.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// UserMessage resolves an error to the copy a screen should display.
// Validation errors surface their own message; backend responses go through
// the status table; everything else gets the generic server-error copy.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}

	var se *StatusError
	if errors.As(err, &se) {
		if msg, ok := statusMessages[se.StatusCode]; ok {
			return msg
		}
	}
	return genericMessage
}
