package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sign-in web application",
	Long: "Start the web application: LinkedIn sign-in with a local account fallback, " +
		"a signed-in home page and logout.",
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// The server always logs requests.
	configureLogging(cmd.ErrOrStderr(), true)
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Printf("[SERVER] sign in at http://127.0.0.1:%d/login/", cfg.Server.Port)
	return srv.Start()
}
