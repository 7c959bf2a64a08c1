package errors

import "fmt"

// HTTPError carries a status code and user-facing message through the
// delivery layer. Details is optional extra context included in the body.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// WithDetails returns a copy carrying additional detail text.
func (e *HTTPError) WithDetails(details string) *HTTPError {
	return &HTTPError{StatusCode: e.StatusCode, Message: e.Message, Details: details}
}

func (e *HTTPError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%d: %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
