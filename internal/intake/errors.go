package intake

import "fmt"

// EntryError reports a line that does not match its field grammar.
type EntryError struct {
	Input   string
	Message string
	Cause   error
}

func (e *EntryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *EntryError) Unwrap() error {
	return e.Cause
}
