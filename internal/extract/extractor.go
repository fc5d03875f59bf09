package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// NoStrategy is the Result.Strategy of a degraded record.
const NoStrategy = "none"

// Validator checks a parsed candidate; *schemas.Schema satisfies it.
type Validator interface {
	ValidateRecord(record any) error
}

// Attempt records why one strategy did not produce the record.
type Attempt struct {
	Strategy string
	Reason   string
}

// Result is the outcome of one extraction.
type Result struct {
	Record   Record
	Strategy string
	Attempts []Attempt
}

// Extractor runs its strategies in order and keeps the first candidate that
// parses as a JSON object and passes the optional validator.
type Extractor struct {
	strategies []Strategy
	message    string
	validator  Validator
}

// New creates an extractor. message is the error text of the degraded record.
func New(message string, strategies ...Strategy) *Extractor {
	return &Extractor{strategies: strategies, message: message}
}

// WithValidator returns a copy of the extractor that rejects candidates failing v.
func (e *Extractor) WithValidator(v Validator) *Extractor {
	clone := *e
	clone.validator = v
	return &clone
}

// Message returns the error text used for degraded records.
func (e *Extractor) Message() string {
	return e.message
}

// Strategies returns the strategy names in the order they are tried.
func (e *Extractor) Strategies() []string {
	names := make([]string, len(e.strategies))
	for i, s := range e.strategies {
		names[i] = s.Name()
	}
	return names
}

// Extract converts a completion into a record. It never fails.
func (e *Extractor) Extract(text string) Result {
	attempts := make([]Attempt, 0, len(e.strategies))

	for _, strategy := range e.strategies {
		candidate, ok := strategy.Candidate(text)
		if !ok {
			attempts = append(attempts, Attempt{Strategy: strategy.Name(), Reason: "no candidate"})
			continue
		}

		record, err := e.accept(candidate)
		if err != nil {
			attempts = append(attempts, Attempt{Strategy: strategy.Name(), Reason: err.Error()})
			continue
		}

		log.Printf("[EXTRACT] %s strategy succeeded after %d failed attempt(s)", strategy.Name(), len(attempts))
		return Result{Record: record, Strategy: strategy.Name(), Attempts: attempts}
	}

	log.Printf("[EXTRACT] all %d strategies failed, returning degraded record", len(e.strategies))
	return Result{Record: Degraded(e.message, text), Strategy: NoStrategy, Attempts: attempts}
}

// Record is Extract without the diagnostics.
func (e *Extractor) Record(text string) Record {
	return e.Extract(text).Record
}

var errNotObject = errors.New("JSON value is not an object")

func (e *Extractor) accept(candidate string) (Record, error) {
	var value any
	if err := json.Unmarshal([]byte(candidate), &value); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	if e.validator != nil {
		if err := e.validator.ValidateRecord(obj); err != nil {
			return nil, fmt.Errorf("schema mismatch: %w", err)
		}
	}
	return Record(obj), nil
}
