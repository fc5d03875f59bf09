package extract

import (
	"regexp"
	"strings"
)

// Strategy locates the JSON candidate in a completion. It reports false when
// the completion holds nothing it recognizes.
type Strategy interface {
	Name() string
	Candidate(text string) (string, bool)
}

// DirectParse treats the whole completion as JSON.
type DirectParse struct{}

// Name implements Strategy.
func (DirectParse) Name() string { return "direct" }

// Candidate implements Strategy.
func (DirectParse) Candidate(text string) (string, bool) {
	return text, strings.TrimSpace(text) != ""
}

// fencePattern matches a ``` or ```json fence. Only the first match is used.
var fencePattern = regexp.MustCompile("(?s)```(?:json)?\n(.*?)\n```")

// FencedBlock takes the body of the first markdown code fence.
// Later fences are never tried, even when the first one does not parse.
type FencedBlock struct{}

// Name implements Strategy.
func (FencedBlock) Name() string { return "fenced" }

// Candidate implements Strategy.
func (FencedBlock) Candidate(text string) (string, bool) {
	m := fencePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// BraceSpan takes everything from the first '{' to the last '}'.
//
// The span is purely textual. A stray '}' in prose after the JSON widens the
// span and the parse fails; the strategy does not try to balance braces.
type BraceSpan struct{}

// Name implements Strategy.
func (BraceSpan) Name() string { return "brace-span" }

// Candidate implements Strategy.
func (BraceSpan) Candidate(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
