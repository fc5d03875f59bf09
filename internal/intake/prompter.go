// Package intake collects interactive answers from a line-oriented terminal.
package intake

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

// ErrInterrupted is returned when the input stream ends before an answer is read.
var ErrInterrupted = errors.New("input interrupted")

// Prompter writes questions to out and reads one line per answer from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Out returns the writer prompts are written to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Println writes a line of text.
//
//nolint:errcheck // terminal output
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted text.
//
//nolint:errcheck // terminal output
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Ask prints label and returns the next line with surrounding space removed.
func (p *Prompter) Ask(label string) (string, error) {
	p.Printf("%s", label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInterrupted
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// AskIndex asks for a number in [0, count) until one is given.
// rangeMsg is printed for out-of-range numbers and numberMsg for anything else.
func (p *Prompter) AskIndex(label string, count int, rangeMsg, numberMsg string) (int, error) {
	for {
		answer, err := p.Ask(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(answer)
		switch {
		case convErr != nil:
			p.Println(numberMsg)
		case n < 0 || n >= count:
			p.Println(rangeMsg)
		default:
			return n, nil
		}
	}
}

// AskChoice prints options as a numbered menu starting at 0 and returns the chosen index.
func (p *Prompter) AskChoice(label string, options []string) (int, error) {
	for i, option := range options {
		p.Printf("   %d - %s\n", i, option)
	}
	return p.AskIndex(label, len(options),
		fmt.Sprintf("Please enter a number between 0 and %d.", len(options)-1),
		"Please enter a valid number.")
}

// AskYesNo asks until the answer is yes, no, y or n.
func (p *Prompter) AskYesNo(label string) (bool, error) {
	for {
		answer, err := p.Ask(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		p.Println("Please enter yes or no.")
	}
}

// Confirm asks once; only y or yes counts as agreement.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Ask(label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// AskPositiveInt asks until a whole number greater than zero is given.
func (p *Prompter) AskPositiveInt(label string) (int, error) {
	for {
		answer, err := p.Ask(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(answer)
		switch {
		case convErr != nil:
			p.Println("Please enter a valid number.")
		case n <= 0:
			p.Println("Please enter a positive number.")
		default:
			return n, nil
		}
	}
}

// AskLevel asks for a skill level. Anything unrecognized becomes intermediate.
func (p *Prompter) AskLevel(label string) (types.SkillLevel, error) {
	answer, err := p.Ask(label)
	if err != nil {
		return "", err
	}
	return types.NormalizeSkillLevel(answer), nil
}

// Lines reads "> " prompted lines until stop reports true for one of them.
// The stopping line is not included.
func (p *Prompter) Lines(stop func(line string) bool) ([]string, error) {
	lines := []string{}
	for {
		line, err := p.Ask("> ")
		if err != nil {
			return nil, err
		}
		if stop(line) {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

// IsDone matches the "done" sentinel in any case.
func IsDone(line string) bool {
	return strings.EqualFold(line, "done")
}

// IsBlank matches an empty line.
func IsBlank(line string) bool {
	return line == ""
}
