package server

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/types"
)

// localUserNamespace seeds the stable ids given to local accounts.
var localUserNamespace = uuid.MustParse("5f0c6e0e-3b7a-4d1b-9a64-0c2f5d7a1e42")

// UserService authenticates the local accounts offered when LinkedIn sign-in
// is unavailable.
type UserService struct {
	users          config.LocalUsers
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(users config.LocalUsers, passwordConfig *config.PasswordConfig) *UserService {
	if users == nil {
		users = config.LocalUsers{}
	}
	return &UserService{
		users:          users,
		passwordConfig: passwordConfig,
	}
}

// Enabled reports whether any local account is configured.
func (s *UserService) Enabled() bool {
	return len(s.users) > 0
}

// Login authenticates a local account and returns its session identity
func (s *UserService) Login(req *types.LoginRequest) (*types.SessionUser, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	account, ok := s.users.Find(req.Username)
	// Security: Always return generic error if user not found or password wrong
	if !ok || !s.passwordConfig.VerifyPassword(req.Password, account.PasswordHash) {
		log.Printf("[SERVER] failed local login for %q", req.Username)
		return nil, &ErrInvalidCredentials{}
	}

	return &types.SessionUser{
		ID:        uuid.NewSHA1(localUserNamespace, []byte(account.Username)).String(),
		Username:  account.Username,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Provider:  types.ProviderLocal,
	}, nil
}

// validationError reports the first failing field of a validator error.
func validationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "request", Message: fmt.Sprintf("invalid request: %v", err)}
}
