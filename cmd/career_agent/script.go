package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/intake"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/recommend"
	"github.com/jonathan/career-advisor/internal/report"
)

const (
	interruptedMessage = "\n\nProcess interrupted. Exiting..."
	retryLabel         = "Would you like to try again? (y/n): "
	saveLabel          = "\nWould you like to save these recommendations to a file? (y/n): "
)

// newCompletionClient builds the configured provider. Tests replace it.
var newCompletionClient = func(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	return llm.NewClient(ctx, llm.NewConfig(cfg.LLM))
}

// exit ends the process when an interrupt arrives while blocked on input.
var exit = os.Exit

// script is what every interactive command works with.
type script struct {
	ctx      context.Context
	cfg      *config.Config
	prompter *intake.Prompter
	report   *report.Printer
	service  *recommend.Service
	client   llm.Client
}

func (s *script) println(a ...any) {
	s.prompter.Println(a...)
}

func (s *script) printf(format string, a ...any) {
	s.prompter.Printf(format, a...)
}

// runInteractive wires config, client and prompter for one command, then runs body.
// Configuration problems are returned (exit 1). Interrupts and runtime failures are
// reported to the user and end the command cleanly.
func runInteractive(cmd *cobra.Command, require func(*config.Config) error, body func(*script) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := require(cfg); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	var once sync.Once
	interrupted := func() { once.Do(func() { fmt.Fprintln(out, interruptedMessage) }) } //nolint:errcheck // terminal output

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			interrupted()
			exit(0)
		case <-done:
		}
	}()

	client, err := newCompletionClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	var opts []recommend.Option
	if cfg.Verbose {
		opts = append(opts, recommend.WithPrinter(observability.NewPrinter(cmd.ErrOrStderr())))
	}
	service, err := recommend.NewService(client, opts...)
	if err != nil {
		return err
	}

	s := &script{
		ctx:      ctx,
		cfg:      cfg,
		prompter: intake.NewPrompter(cmd.InOrStdin(), out),
		report:   report.NewPrinter(out),
		service:  service,
		client:   client,
	}

	err = body(s)
	switch {
	case err == nil:
		return nil
	case isInterrupt(err):
		interrupted()
		return nil
	default:
		fmt.Fprintf(out, "\n\nAn error occurred: %v\n", err) //nolint:errcheck // terminal output
		return nil
	}
}

func isInterrupt(err error) bool {
	return errors.Is(err, intake.ErrInterrupted) || errors.Is(err, context.Canceled)
}

// retry runs call until it succeeds or the user declines another attempt after a
// transport failure. ok is false when the user gave up.
func retry[T any](s *script, what string, call func() (T, error)) (result T, ok bool, err error) {
	for {
		result, err = call()
		if err == nil {
			return result, true, nil
		}
		if isInterrupt(err) || !llm.IsTransportError(err) {
			return result, false, err
		}

		s.printf("\nError generating %s: %v\n", what, err)
		again, askErr := s.prompter.Confirm(retryLabel)
		if askErr != nil {
			return result, false, askErr
		}
		if !again {
			return result, false, nil
		}
	}
}

// offerSave asks whether to write the record to path. A degraded record is
// saved in its {error, raw_response} form.
func (s *script) offerSave(record extract.Record, path string) error {
	save, err := s.prompter.Confirm(saveLabel)
	if err != nil || !save {
		return err
	}
	if err := report.Save(record, path); err != nil {
		s.printf("Error saving recommendations: %v\n", err)
		return nil
	}
	s.printf("\nRecommendations saved to %s\n", path)
	return nil
}

func requireLLM(cfg *config.Config) error {
	return cfg.RequireLLM()
}
