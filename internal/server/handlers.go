package server

import (
	"context"
	"embed"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/jonathan/career-advisor/internal/linkedin"
	"github.com/jonathan/career-advisor/internal/server/middleware"
	"github.com/jonathan/career-advisor/internal/server/ratelimit"
	"github.com/jonathan/career-advisor/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// loginPath is where anonymous users are sent.
const loginPath = ratelimit.LoginPath

// fallbackURL is the login page with the LinkedIn failure notice shown.
const fallbackURL = loginPath + "?fallback=linkedin"

// OAuthProvider is the part of the LinkedIn client the web flow needs.
type OAuthProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	FetchProfile(ctx context.Context, token *oauth2.Token) (*linkedin.Profile, error)
}

func parseTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

type loginPage struct {
	Next         string
	Username     string
	Error        string
	Fallback     bool
	LocalEnabled bool
	LinkedInURL  string
}

type homePage struct {
	User     *types.SessionUser
	Provider string
}

// handleHome renders the signed-in user. RequireUser guards it.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r)
	provider := "Local account"
	if user.Provider == types.ProviderLinkedIn {
		provider = "LinkedIn"
	}
	s.render(w, http.StatusOK, "home.html", homePage{User: user, Provider: provider})
}

// handleLoginPage renders the sign-in choices.
func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r); ok {
		http.Redirect(w, r, safeNext(r.URL.Query().Get("next")), http.StatusFound)
		return
	}
	s.render(w, http.StatusOK, "login.html", s.loginPage(r.URL.Query().Get("next"), r.URL.Query().Get("fallback") == "linkedin"))
}

// handleLogin checks a local account and starts a session.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, http.StatusBadRequest, "login.html", s.loginPage("", false))
		return
	}

	req := types.LoginRequest{
		Username: strings.TrimSpace(r.PostForm.Get("username")),
		Password: r.PostForm.Get("password"),
		Next:     r.PostForm.Get("next"),
	}

	page := s.loginPage(req.Next, false)
	page.Username = req.Username

	if !s.userService.Enabled() {
		page.Error = "Local accounts are not enabled on this server."
		s.render(w, http.StatusForbidden, "login.html", page)
		return
	}

	user, err := s.userService.Login(&req)
	if err != nil {
		page.Error = loginErrorMessage(err)
		s.render(w, HTTPStatus(err), "login.html", page)
		return
	}

	if err := s.sessions.setSessionCookie(w, r, *user); err != nil {
		log.Printf("[SERVER] failed to start session: %v", err)
		page.Error = "Could not start a session. Please try again."
		s.render(w, http.StatusInternalServerError, "login.html", page)
		return
	}

	log.Printf("[SERVER] local user %s signed in", user.Username)
	http.Redirect(w, r, safeNext(req.Next), http.StatusFound)
}

// handleLogout ends the session.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, SessionCookieName)
	http.Redirect(w, r, "/", http.StatusFound)
}

// handleOAuthBegin sends the browser to LinkedIn with a fresh state value.
func (s *Server) handleOAuthBegin(w http.ResponseWriter, r *http.Request) {
	state := linkedin.NewState()
	http.SetCookie(w, &http.Cookie{
		Name:     StateCookieName,
		Value:    state,
		Path:     "/social-auth/",
		MaxAge:   int(stateCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, s.oauth.AuthURL(state), http.StatusFound)
}

// handleOAuthComplete finishes the LinkedIn flow. Every failure lands on the
// fallback login page.
func (s *Server) handleOAuthComplete(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie(StateCookieName)
	http.SetCookie(w, &http.Cookie{Name: StateCookieName, Value: "", Path: "/social-auth/", MaxAge: -1, HttpOnly: true})
	if err != nil || stateCookie.Value == "" {
		s.oauthFailed(w, r, &ErrOAuthState{})
		return
	}

	code, err := linkedin.ParseRedirect(r.URL.String(), stateCookie.Value)
	if err != nil {
		s.oauthFailed(w, r, err)
		return
	}

	token, err := s.oauth.Exchange(r.Context(), code)
	if err != nil {
		s.oauthFailed(w, r, err)
		return
	}

	profile, err := s.oauth.FetchProfile(r.Context(), token)
	if err != nil {
		s.oauthFailed(w, r, err)
		return
	}

	user := profile.Details()
	if user.ID == "" {
		s.oauthFailed(w, r, &ErrOAuthProfile{Message: "member id is missing"})
		return
	}
	if err := s.sessions.setSessionCookie(w, r, user); err != nil {
		s.oauthFailed(w, r, err)
		return
	}

	log.Printf("[OAUTH] LinkedIn member %s signed in", user.ID)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) oauthFailed(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("[OAUTH] sign-in failed (status %d): %v", HTTPStatus(err), err)
	http.Redirect(w, r, fallbackURL, http.StatusFound)
}

func (s *Server) loginPage(next string, fallback bool) loginPage {
	return loginPage{
		Next:         safeNext(next),
		Fallback:     fallback,
		LocalEnabled: s.userService.Enabled(),
		LinkedInURL:  ratelimit.OAuthBeginPath,
	}
}

// render executes a template into a buffer first so a template error never
// produces a half-written page.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf strings.Builder
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("[SERVER] failed to render %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(buf.String()))
}

func loginErrorMessage(err error) string {
	switch err.(type) {
	case *ErrInvalidCredentials:
		return "Please enter a correct username and password."
	case *ErrValidation:
		return "Please enter both a username and a password."
	default:
		return "Sign-in failed. Please try again."
	}
}

// safeNext only allows local absolute paths as post-login targets.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	parsed, err := url.Parse(next)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return "/"
	}
	return next
}
