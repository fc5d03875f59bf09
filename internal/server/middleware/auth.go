// Package middleware provides HTTP middleware for session authentication.
package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jonathan/career-advisor/internal/types"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// userKey is the context key for storing the signed-in user.
const userKey ContextKey = "sessionUser"

// TokenValidator is an interface for validating session tokens.
// This allows the middleware to work with any session service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (UserGetter, error)
}

// UserGetter is an interface for extracting the user from token claims.
type UserGetter interface {
	GetUser() types.SessionUser
}

// SessionMiddleware resolves the session cookie into a user on the request context.
// Requests without a valid cookie pass through anonymously; a stale cookie is cleared.
func SessionMiddleware(validator TokenValidator, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := validator.ValidateToken(cookie.Value)
			if err != nil {
				http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
				next.ServeHTTP(w, r)
				return
			}

			user := claims.GetUser()
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), &user)))
		})
	}
}

// RequireUser redirects anonymous requests to loginPath with a next parameter
// pointing back at the requested path.
func RequireUser(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetUser(r); !ok {
				target := loginPath + "?" + url.Values{"next": {r.URL.RequestURI()}}.Encode()
				http.Redirect(w, r, target, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithUser returns a context carrying the signed-in user.
func WithUser(ctx context.Context, user *types.SessionUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser extracts the signed-in user from the request context.
func GetUser(r *http.Request) (*types.SessionUser, bool) {
	user, ok := r.Context().Value(userKey).(*types.SessionUser)
	return user, ok && user != nil
}
