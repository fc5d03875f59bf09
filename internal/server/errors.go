package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/career-advisor/internal/linkedin"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrOAuthState indicates a callback whose state does not match the one issued
type ErrOAuthState struct{}

func (e *ErrOAuthState) Error() string {
	return "sign-in state mismatch; please start again"
}

// ErrOAuthProfile indicates a LinkedIn profile that cannot identify a session user
type ErrOAuthProfile struct {
	Message string
}

func (e *ErrOAuthProfile) Error() string {
	return "unusable LinkedIn profile: " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		credsErr    *ErrInvalidCredentials
		validErr    *ErrValidation
		stateErr    *ErrOAuthState
		redirectErr *linkedin.RedirectError
		apiErr      *linkedin.APIError
		profileErr  *ErrOAuthProfile
	)
	switch {
	case errors.As(err, &credsErr):
		return http.StatusUnauthorized
	case errors.As(err, &validErr), errors.As(err, &stateErr), errors.As(err, &redirectErr):
		return http.StatusBadRequest
	case errors.As(err, &apiErr), errors.As(err, &profileErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
