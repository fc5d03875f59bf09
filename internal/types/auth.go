//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Identity providers a session can originate from.
const (
	ProviderLinkedIn = "linkedin"
	ProviderLocal    = "local"
)

// LoginRequest is the local-account sign-in form.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
	Next     string `json:"next,omitempty"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SessionUser is the identity carried by a web session.
// It is populated from the LinkedIn profile or from a local account.
type SessionUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Email      string `json:"email,omitempty"`
	PictureURL string `json:"picture_url,omitempty"`
	Provider   string `json:"provider"`
}

// DisplayName returns the full name, falling back to the username.
func (u *SessionUser) DisplayName() string {
	if u == nil {
		return ""
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}
