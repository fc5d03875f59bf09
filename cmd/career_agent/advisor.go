package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/intake"
	"github.com/jonathan/career-advisor/internal/linkedin"
	"github.com/jonathan/career-advisor/internal/types"
)

const (
	jobSuggestionsFailed = "Error generating job suggestions. Please try again."
	learningPathFailed   = "Error generating learning path. Please try again."
)

// linkedInAuthenticator is the part of the LinkedIn client the advisor uses.
type linkedInAuthenticator interface {
	AuthURL(state string) string
	Authenticate(ctx context.Context, redirectURL, wantState string) (*linkedin.Profile, error)
}

// newLinkedInClient builds the OAuth client. Tests replace it.
var newLinkedInClient = func(cfg config.LinkedInConfig) linkedInAuthenticator {
	return linkedin.New(cfg)
}

var advisorCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Suggest jobs and a learning path from your LinkedIn or manually entered profile",
	Long: "Optionally signs in with LinkedIn, collects your skills and work experience, extracts a structured " +
		"profile, then suggests jobs for a target industry and a learning path for the job you pick.",
	Args: cobra.NoArgs,
	RunE: runAdvisor,
}

func init() {
	rootCmd.AddCommand(advisorCmd)
}

func runAdvisor(cmd *cobra.Command, _ []string) error {
	return runInteractive(cmd, (*config.Config).RequireAdvisor, func(s *script) error {
		s.println("===== LinkedIn Career Path Advisor =====")

		useLinkedIn, err := s.prompter.Confirm("Do you want to use LinkedIn API for authentication? (y/n): ")
		if err != nil {
			return err
		}

		var seed *types.ProfileInput
		if useLinkedIn {
			if seed, err = signInWithLinkedIn(s); err != nil {
				return err
			}
		}

		profile, err := intake.ManualProfile(s.prompter, seed)
		if err != nil {
			return err
		}

		s.println("\nExtracting skills and experience...")
		result, ok, err := retry(s, "profile data", func() (extract.Result, error) {
			return s.service.ExtractProfile(s.ctx, profile)
		})
		if !ok {
			return err
		}
		s.report.ExtractedProfile(result.Record)
		if result.Record.IsDegraded() {
			s.println("Error during data extraction.")
			return nil
		}

		industry, err := s.prompter.Ask("\nEnter your target industry: ")
		if err != nil {
			return err
		}
		s.println("\nGenerating job suggestions...")
		suggestions, err := freeText(s, jobSuggestionsFailed, func() (string, error) {
			return s.service.JobSuggestions(s.ctx, result.Record, industry)
		})
		if err != nil {
			return err
		}
		s.report.Text("Job Suggestions", suggestions)

		job, err := s.prompter.Ask("\nEnter the job title you want to pursue: ")
		if err != nil {
			return err
		}
		s.println("\nGenerating learning path...")
		path, err := freeText(s, learningPathFailed, func() (string, error) {
			return s.service.LearningPath(s.ctx, result.Record, job)
		})
		if err != nil {
			return err
		}
		s.report.Text("Learning Path", path)

		s.println("\nThank you for using LinkedIn Career Path Advisor!")
		return nil
	})
}

// signInWithLinkedIn runs the paste-the-redirect flow. Any failure is reported and
// yields a nil seed so the caller falls back to manual entry.
func signInWithLinkedIn(s *script) (*types.ProfileInput, error) {
	client := newLinkedInClient(s.cfg.LinkedIn)
	state := linkedin.NewState()

	s.println("\nPlease visit this URL in your browser to authorize the app:")
	s.println(client.AuthURL(state))
	s.println("\nAfter authorization, you'll be redirected to a URL. Copy the entire URL and paste it here.")
	redirectURL, err := s.prompter.Ask("Paste the redirect URL here: ")
	if err != nil {
		return nil, err
	}

	profile, err := client.Authenticate(s.ctx, redirectURL, state)
	if err != nil {
		if isInterrupt(err) {
			return nil, err
		}
		s.printf("Error processing authentication: %v\n", err)
		s.println("Switching to manual input.")
		return nil, nil
	}

	user := profile.Details()
	s.printf("Signed in to LinkedIn as %s.\n", user.DisplayName())
	s.println("LinkedIn does not share skills or positions, so please add them below.")
	return profile.Seed(), nil
}

// freeText returns the generated text, or failed when the transport fails.
func freeText(s *script, failed string, call func() (string, error)) (string, error) {
	text, err := call()
	if err == nil {
		return text, nil
	}
	if isInterrupt(err) {
		return "", err
	}
	s.printf("%v\n", err)
	return failed, nil
}
