package linkedin

import (
	"fmt"
	"strings"
)

// APIError is a non-2xx answer from the token or profile endpoint.
type APIError struct {
	Operation string
	Status    int
	Body      string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("LinkedIn API error during %s (status %d)", e.Operation, e.Status)
	}
	return fmt.Sprintf("LinkedIn API error during %s (status %d): %s", e.Operation, e.Status, body)
}

// RedirectError reports a redirect URL that does not carry a usable authorization code.
type RedirectError struct {
	Message string
	Cause   error
}

func (e *RedirectError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RedirectError) Unwrap() error {
	return e.Cause
}
