// Package main provides the career_agent CLI: interactive course, skills, project
// and career path advisors backed by Gemini, plus the sign-in web application.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/config"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Career Path Advisor",
	Long: "Career Path Advisor asks about your learning goals, skills, completed courses or LinkedIn profile " +
		"and uses Gemini to recommend courses, learning paths, portfolio projects and jobs.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics and echo prompts and completions")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads --config and the environment, then applies --verbose.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}
	configureLogging(cmd.ErrOrStderr(), cfg.Verbose)
	return cfg, nil
}

// configureLogging keeps diagnostics out of interactive sessions unless asked for.
func configureLogging(w io.Writer, enabled bool) {
	if !enabled {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
}
