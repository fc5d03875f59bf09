package llm

import (
	"context"
	"errors"
	"fmt"
)

// TransportError is any failure talking to the generation endpoint:
// network, authentication, quota, timeout or an empty answer.
type TransportError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s request failed: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s request failed: %s", e.Provider, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Timeout reports whether the call ran past its deadline.
func (e *TransportError) Timeout() bool {
	return errors.Is(e.Cause, context.DeadlineExceeded)
}

// IsTransportError reports whether err is, or wraps, a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
