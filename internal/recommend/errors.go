package recommend

import "fmt"

// PromptError represents a failure to build a prompt from its template.
type PromptError struct {
	Message string
	Cause   error
}

func (e *PromptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PromptError) Unwrap() error {
	return e.Cause
}
