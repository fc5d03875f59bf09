package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/server/middleware"
	"github.com/jonathan/career-advisor/internal/types"
)

// Cookie names used by the web application.
const (
	SessionCookieName = "sessionid"
	StateCookieName   = "oauth_state"
)

// stateCookieTTL bounds how long a LinkedIn round trip may take.
const stateCookieTTL = 10 * time.Minute

// Claims represents session claims carrying the signed-in user.
type Claims struct {
	User types.SessionUser `json:"user"`
	jwt.RegisteredClaims
}

// GetUser returns the user from the claims.
// This implements the middleware.UserGetter interface.
func (c *Claims) GetUser() types.SessionUser {
	return c.User
}

// AsTokenValidator returns a TokenValidator adapter for this SessionService.
// This allows the SessionService to be used with middleware without creating import cycles.
func (s *SessionService) AsTokenValidator() middleware.TokenValidator {
	return &sessionValidator{service: s}
}

type sessionValidator struct {
	service *SessionService
}

func (v *sessionValidator) ValidateToken(tokenString string) (middleware.UserGetter, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// SessionService issues and validates the signed session tokens stored in the session cookie.
type SessionService struct {
	config config.SessionConfig
	now    func() time.Time
}

// NewSessionService creates a new session service with the given configuration.
func NewSessionService(cfg config.SessionConfig) *SessionService {
	return &SessionService{
		config: cfg,
		now:    time.Now,
	}
}

// GenerateToken generates a session token for the given user.
func (s *SessionService) GenerateToken(user types.SessionUser) (string, error) {
	now := s.now()
	expiresAt := now.Add(s.config.TTL())

	claims := &Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a session token and returns the claims.
func (s *SessionService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrSignatureInvalid), errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("invalid token signature: %w", err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("token expired: %w", err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("malformed token: %w", err)
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	if claims.User.ID == "" {
		return nil, fmt.Errorf("token carries no user")
	}

	return claims, nil
}

// setSessionCookie signs the user into the session cookie.
func (s *SessionService) setSessionCookie(w http.ResponseWriter, r *http.Request, user types.SessionUser) error {
	token, err := s.GenerateToken(user)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.config.TTL().Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
