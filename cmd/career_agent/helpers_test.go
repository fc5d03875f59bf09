package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/llm/llmtest"
)

var envKeys = []string{
	"LLM_PROVIDER", "GOOGLE_API_KEY", "GEMINI_API_KEY", "LLM_MODEL", "LLM_TIMEOUT",
	"LINKEDIN_CLIENT_ID", "LINKEDIN_CLIENT_SECRET", "LINKEDIN_REDIRECT_URI", "LINKEDIN_SCOPES",
	"PORT", "LOCAL_USERS_FILE", "CORS_ALLOWED_ORIGIN",
	"SESSION_SECRET", "SESSION_TTL_HOURS", "BCRYPT_COST", "PASSWORD_PEPPER",
}

// setupEnv blanks the developer's environment and sets only what the test needs.
func setupEnv(t *testing.T, values map[string]string) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, values[key])
	}
}

// llmEnv is enough configuration for the course, skills and projects commands.
func llmEnv() map[string]string {
	return map[string]string{"GOOGLE_API_KEY": "test-key"}
}

// advisorEnv adds the LinkedIn application to llmEnv.
func advisorEnv() map[string]string {
	env := llmEnv()
	env["LINKEDIN_CLIENT_ID"] = "client-id"
	env["LINKEDIN_CLIENT_SECRET"] = "client-secret"
	return env
}

// useClient makes every command talk to client instead of Gemini.
func useClient(t *testing.T, client llm.Client) {
	t.Helper()
	original := newCompletionClient
	newCompletionClient = func(context.Context, *config.Config) (llm.Client, error) {
		return client, nil
	}
	t.Cleanup(func() { newCompletionClient = original })
}

// resetFlags restores every flag to its default so runs do not leak into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// runCommand executes the CLI with scripted stdin and returns what it printed.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	originalExit := exit
	exit = func(code int) { t.Errorf("unexpected exit(%d)", code) }
	t.Cleanup(func() { exit = originalExit })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// lines joins scripted answers, one per line.
func lines(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}

func newFake(t *testing.T, responses ...llmtest.Response) *llmtest.Client {
	t.Helper()
	client := llmtest.New(responses...)
	useClient(t, client)
	require.NotNil(t, client)
	return client
}
