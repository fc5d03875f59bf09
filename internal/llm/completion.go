package llm

import "strings"

// CompletionKind tags which shape the provider answered with.
type CompletionKind string

const (
	// KindText is a completion read from a single direct text field.
	KindText CompletionKind = "text"
	// KindCandidates is a completion rebuilt from the content parts of the first candidate.
	KindCandidates CompletionKind = "candidates"
)

// Completion is the raw answer of one generation call.
// Exactly one of Text or Parts is meaningful, selected by Kind.
type Completion struct {
	Kind  CompletionKind
	Text  string
	Parts []string
}

// TextCompletion builds the direct-text variant.
func TextCompletion(text string) Completion {
	return Completion{Kind: KindText, Text: text}
}

// CandidatesCompletion builds the candidates variant from ordered content parts.
func CandidatesCompletion(parts ...string) Completion {
	return Completion{Kind: KindCandidates, Parts: parts}
}

// Content normalizes both variants to the full completion text.
// Candidate parts are concatenated in order with no separator.
func (c Completion) Content() string {
	switch c.Kind {
	case KindCandidates:
		return strings.Join(c.Parts, "")
	default:
		return c.Text
	}
}

// IsEmpty reports whether the completion carries no usable text.
func (c Completion) IsEmpty() bool {
	return strings.TrimSpace(c.Content()) == ""
}

// RequestEnvelope is one rendered prompt plus the output schema it embeds.
// Schema is nil for free-text requests.
type RequestEnvelope struct {
	Prompt string
	Schema *OutputSchema
}

// Expects returns the schema name for logging, or "text" for free-text requests.
func (e RequestEnvelope) Expects() string {
	if e.Schema == nil {
		return "text"
	}
	return e.Schema.Name
}
