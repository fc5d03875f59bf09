// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// maxLinesToShow caps how much of a prompt or completion is echoed
	maxLinesToShow = 40
)

// Printer handles formatted output for verbose mode. A nil Printer prints nothing.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	if len(lines) > maxLinesToShow {
		hidden := len(lines) - maxLinesToShow
		lines = append(lines[:maxLinesToShow], fmt.Sprintf("... %d more lines", hidden))
	}
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\t", "    ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintRequest outputs the rendered prompt of a request.
func (p *Printer) PrintRequest(req llm.RequestEnvelope) {
	if p == nil {
		return
	}
	p.printBox(fmt.Sprintf("PROMPT (expects %s)", req.Expects()), strings.TrimSpace(req.Prompt))
}

// PrintCompletion outputs the raw completion and which response shape carried it.
func (p *Printer) PrintCompletion(c llm.Completion) {
	if p == nil {
		return
	}

	title := fmt.Sprintf("COMPLETION (%s)", c.Kind)
	if c.Kind == llm.KindCandidates {
		title = fmt.Sprintf("COMPLETION (%s, %d parts)", c.Kind, len(c.Parts))
	}
	p.printBox(title, strings.TrimSpace(c.Content()))
}

// PrintExtraction outputs which strategy produced the record and why earlier ones failed.
func (p *Printer) PrintExtraction(result extract.Result) {
	if p == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Strategy: %s\n", result.Strategy))
	if result.Record.IsDegraded() {
		sb.WriteString("Record:   degraded\n")
	} else {
		sb.WriteString(fmt.Sprintf("Record:   %d top-level keys\n", len(result.Record)))
	}

	if len(result.Attempts) > 0 {
		sb.WriteString("\nFailed attempts:\n")
		for _, attempt := range result.Attempts {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", attempt.Strategy, attempt.Reason))
		}
	}

	p.printBox("EXTRACTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillsProfile outputs a summary of collected skills.
func (p *Printer) PrintSkillsProfile(profile *types.SkillsProfile) {
	if p == nil || profile == nil {
		return
	}

	var sb strings.Builder
	writeList := func(title string, names []string) {
		if len(names) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("%s (%d):\n", title, len(names)))
		count := min(len(names), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", names[i]))
		}
		if len(names) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeList("Technical Skills", skillNames(profile.TechnicalSkills))
	writeList("Soft Skills", skillNames(profile.SoftSkills))
	knowledge := make([]string, 0, len(profile.IndustryKnowledge))
	for _, k := range profile.IndustryKnowledge {
		knowledge = append(knowledge, describe(k.KnowledgeArea, k.YearsExperience, k.ProficiencyLevel))
	}
	writeList("Industry Knowledge", knowledge)

	if sb.Len() == 0 {
		sb.WriteString("No skills entered")
	}
	p.printBox("SKILLS PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfileInput outputs the profile handed to the extraction prompt.
func (p *Printer) PrintProfileInput(profile *types.ProfileInput) {
	if p == nil || profile == nil {
		return
	}

	var sb strings.Builder
	if profile.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.Name))
	}
	if profile.Headline != "" {
		sb.WriteString(fmt.Sprintf("Headline: %s\n", profile.Headline))
	}
	sb.WriteString(fmt.Sprintf("Skills:   %d\n", len(profile.Skills)))
	for i, exp := range profile.Experience {
		if i == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  • %s, %s (%s yrs)\n", exp.Title, exp.Company, exp.Years))
	}

	p.printBox("PROFILE INPUT", strings.TrimSuffix(sb.String(), "\n"))
}

func skillNames(entries []types.SkillEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, describe(e.Skill, e.YearsExperience, e.ProficiencyLevel))
	}
	return names
}

func describe(name string, years *float64, level types.Proficiency) string {
	var details []string
	if years != nil {
		details = append(details, fmt.Sprintf("%g yrs", *years))
	}
	if level != "" {
		details = append(details, string(level))
	}
	if len(details) == 0 {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(details, ", "))
}
