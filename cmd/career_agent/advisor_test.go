package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/linkedin"
	"github.com/jonathan/career-advisor/internal/llm/llmtest"
)

const profileJSON = `{"technical_skills": ["Go", "SQL"], "soft_skills": ["Mentoring"], "industry_knowledge": ["Payments"]}`

// pastedRedirect skips the state check: the state is generated inside the command
// and scripted stdin cannot echo it back.
type pastedRedirect struct {
	*linkedin.Client
}

func (p pastedRedirect) Authenticate(ctx context.Context, redirectURL, _ string) (*linkedin.Profile, error) {
	return p.Client.Authenticate(ctx, redirectURL, "")
}

// useLinkedIn points the advisor at a fake LinkedIn that grants tokenStatus.
func useLinkedIn(t *testing.T, tokenStatus int) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v2/accessToken", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(tokenStatus)
		if tokenStatus != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"token-123","expires_in":3600}`))
	})
	mux.HandleFunc("/v2/me", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id": "abc123", "localizedFirstName": "Ada", "localizedLastName": "Lovelace", "localizedHeadline": "Analyst",
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	original := newLinkedInClient
	newLinkedInClient = func(cfg config.LinkedInConfig) linkedInAuthenticator {
		return pastedRedirect{linkedin.New(cfg,
			linkedin.WithEndpoint(server.URL+"/oauth/v2/authorization", server.URL+"/oauth/v2/accessToken"),
			linkedin.WithAPIBaseURL(server.URL),
			linkedin.WithHTTPClient(server.Client()),
		)}
	}
	t.Cleanup(func() { newLinkedInClient = original })
}

// manualProfile answers the skills and experience prompts.
var manualProfile = []string{"Go", "SQL", "", "Acme | Engineer | 2.5", "bad line", ""}

func TestAdvisor_ManualInput(t *testing.T) {
	setupEnv(t, advisorEnv())
	client := newFake(t,
		llmtest.Text("Sure! "+profileJSON+" Hope that helps."),
		llmtest.Text("1. Payments Engineer\n2. SRE"),
		llmtest.Text("Month 1: Learn Kafka"),
	)

	stdin := lines(append([]string{"n"}, append(manualProfile, "Fintech", "SRE")...)...)
	output, err := runCommand(t, stdin, "advisor")
	require.NoError(t, err)

	assert.Contains(t, output, "===== LinkedIn Career Path Advisor =====")
	assert.Contains(t, output, "Invalid format. Please use 'Company | Title | Years'")
	assert.Contains(t, output, "Extracting skills and experience...")
	assert.Contains(t, output, "Extracted Data:")
	assert.Contains(t, output, "\n===== Job Suggestions =====\n1. Payments Engineer\n2. SRE\n")
	assert.Contains(t, output, "\n===== Learning Path =====\nMonth 1: Learn Kafka\n")
	assert.Contains(t, output, "Thank you for using LinkedIn Career Path Advisor!")
	assert.NotContains(t, output, "authorize the app")

	require.Len(t, client.Requests, 3)
	assert.Contains(t, client.Requests[0].Prompt, "Acme")
	assert.Contains(t, client.Requests[1].Prompt, "Fintech")
	assert.Contains(t, client.Requests[2].Prompt, "SRE")
}

func TestAdvisor_LinkedInSeedsProfile(t *testing.T) {
	setupEnv(t, advisorEnv())
	useLinkedIn(t, http.StatusOK)
	client := newFake(t, llmtest.Text(profileJSON), llmtest.Text("jobs"), llmtest.Text("path"))

	redirect := "http://127.0.0.1:8000/social-auth/complete/linkedin-oauth2/?code=xyz&state=ignored"
	stdin := lines(append([]string{"y", redirect}, append(manualProfile, "Fintech", "SRE")...)...)
	output, err := runCommand(t, stdin, "advisor")
	require.NoError(t, err)

	assert.Contains(t, output, "Please visit this URL in your browser to authorize the app:")
	assert.Contains(t, output, "/oauth/v2/authorization?")
	assert.Contains(t, output, "Signed in to LinkedIn as Ada Lovelace.")
	assert.NotContains(t, output, "Switching to manual input.")
	assert.Contains(t, client.Requests[0].Prompt, "Ada Lovelace")
}

func TestAdvisor_LinkedInFailureFallsBackToManual(t *testing.T) {
	setupEnv(t, advisorEnv())
	useLinkedIn(t, http.StatusBadRequest)
	newFake(t, llmtest.Text(profileJSON), llmtest.Text("jobs"), llmtest.Text("path"))

	stdin := lines(append([]string{"y", "http://localhost/cb?code=expired"}, append(manualProfile, "Fintech", "SRE")...)...)
	output, err := runCommand(t, stdin, "advisor")
	require.NoError(t, err)

	assert.Contains(t, output, "Error processing authentication:")
	assert.Contains(t, output, "Switching to manual input.")
	assert.Contains(t, output, "Please enter your profile information manually")
	assert.Contains(t, output, "Thank you for using LinkedIn Career Path Advisor!")
}

func TestAdvisor_DegradedExtractionStops(t *testing.T) {
	setupEnv(t, advisorEnv())
	client := newFake(t, llmtest.Text("I could not find any skills."))

	output, err := runCommand(t, lines(append([]string{"n"}, manualProfile...)...), "advisor")
	require.NoError(t, err)

	assert.Contains(t, output, "Could not extract data. Please try again.")
	assert.Contains(t, output, "Error during data extraction.")
	assert.NotContains(t, output, "target industry")
	assert.Len(t, client.Requests, 1)
}

func TestAdvisor_FreeTextFailureContinues(t *testing.T) {
	setupEnv(t, advisorEnv())
	newFake(t, llmtest.Text(profileJSON), llmtest.Fail("timeout"), llmtest.Text("path"))

	stdin := lines(append([]string{"n"}, append(manualProfile, "Fintech", "SRE")...)...)
	output, err := runCommand(t, stdin, "advisor")
	require.NoError(t, err)

	assert.Contains(t, output, "===== Job Suggestions =====\n"+jobSuggestionsFailed)
	assert.Contains(t, output, "===== Learning Path =====\npath")
}

func TestAdvisor_RequiresLinkedInCredentials(t *testing.T) {
	setupEnv(t, llmEnv())
	newFake(t)

	_, err := runCommand(t, "", "advisor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LINKEDIN_CLIENT_ID")
	assert.Contains(t, err.Error(), "LINKEDIN_CLIENT_SECRET")
}
