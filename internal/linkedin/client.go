// Package linkedin implements the LinkedIn OAuth 2.0 sign-in and profile lookup.
package linkedin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/jonathan/career-advisor/internal/config"
)

// LinkedIn endpoints.
const (
	AuthorizationURL  = "https://www.linkedin.com/oauth/v2/authorization"
	AccessTokenURL    = "https://www.linkedin.com/oauth/v2/accessToken"
	DefaultAPIBaseURL = "https://api.linkedin.com"
)

// DefaultTimeout bounds each token and profile request.
const DefaultTimeout = 30 * time.Second

// maxBodyBytes caps how much of an error body is kept for reporting.
const maxBodyBytes = 4096

// Client performs the authorization code flow against LinkedIn.
type Client struct {
	oauth      *oauth2.Config
	apiBaseURL string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the authorization and token URLs.
func WithEndpoint(authURL, tokenURL string) Option {
	return func(c *Client) {
		c.oauth.Endpoint.AuthURL = authURL
		c.oauth.Endpoint.TokenURL = tokenURL
	}
}

// WithAPIBaseURL overrides the host serving /v2/me.
func WithAPIBaseURL(baseURL string) Option {
	return func(c *Client) { c.apiBaseURL = baseURL }
}

// WithHTTPClient sets the client used for token and profile requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New creates a client for the configured LinkedIn application.
func New(cfg config.LinkedInConfig, opts ...Option) *Client {
	c := &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       cfg.ScopeList(),
			Endpoint: oauth2.Endpoint{
				AuthURL:   AuthorizationURL,
				TokenURL:  AccessTokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		apiBaseURL: DefaultAPIBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewState returns a fresh value for the OAuth state parameter.
func NewState() string {
	return uuid.NewString()
}

// AuthURL returns the URL the user visits to grant access.
func (c *Client) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange trades an authorization code for an access token.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			log.Printf("[OAUTH] token exchange rejected with status %d", retrieveErr.Response.StatusCode)
			return nil, &APIError{Operation: "token exchange", Status: retrieveErr.Response.StatusCode, Body: string(retrieveErr.Body)}
		}
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	log.Printf("[OAUTH] access token obtained")
	return token, nil
}

// FetchProfile reads the signed-in member's profile.
func (c *Client) FetchProfile(ctx context.Context, token *oauth2.Token) (*Profile, error) {
	if token == nil || token.AccessToken == "" {
		return nil, errors.New("access token is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/v2/me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		log.Printf("[OAUTH] profile request rejected with status %d", resp.StatusCode)
		return nil, &APIError{Operation: "profile fetch", Status: resp.StatusCode, Body: string(body)}
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	log.Printf("[OAUTH] fetched profile %s", profile.ID)
	return &profile, nil
}

// Authenticate completes the flow from a pasted redirect URL: it checks the state,
// exchanges the code and fetches the profile.
func (c *Client) Authenticate(ctx context.Context, redirectURL, wantState string) (*Profile, error) {
	code, err := ParseRedirect(redirectURL, wantState)
	if err != nil {
		return nil, err
	}
	token, err := c.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}
	return c.FetchProfile(ctx, token)
}

// ParseRedirect extracts the authorization code from the URL LinkedIn redirected to.
// An empty wantState skips the state check.
func ParseRedirect(rawURL, wantState string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", &RedirectError{Message: "invalid redirect URL", Cause: err}
	}
	query := parsed.Query()

	if providerErr := query.Get("error"); providerErr != "" {
		msg := "authorization denied: " + providerErr
		if desc := query.Get("error_description"); desc != "" {
			msg += " (" + desc + ")"
		}
		return "", &RedirectError{Message: msg}
	}
	if wantState != "" && query.Get("state") != wantState {
		return "", &RedirectError{Message: "state mismatch in redirect URL"}
	}
	code := query.Get("code")
	if code == "" {
		return "", &RedirectError{Message: "authorization code not found in redirect URL"}
	}
	return code, nil
}
