// Package llmtest provides a scripted llm.Client for tests.
package llmtest

import (
	"context"

	"github.com/jonathan/career-advisor/internal/llm"
)

// Response is one scripted answer.
type Response struct {
	Completion llm.Completion
	Err        error
}

// Text scripts a direct-text completion.
func Text(text string) Response {
	return Response{Completion: llm.TextCompletion(text)}
}

// Candidates scripts a candidates completion.
func Candidates(parts ...string) Response {
	return Response{Completion: llm.CandidatesCompletion(parts...)}
}

// Fail scripts a transport failure.
func Fail(message string) Response {
	return Response{Err: &llm.TransportError{Provider: "fake", Message: message}}
}

// Client replays scripted responses in order and records every request.
type Client struct {
	Responses []Response
	Requests  []llm.RequestEnvelope
	Closed    bool
}

// New returns a client that answers with responses in order.
func New(responses ...Response) *Client {
	return &Client{Responses: responses}
}

// Complete implements llm.Client.
func (c *Client) Complete(ctx context.Context, req llm.RequestEnvelope) (llm.Completion, error) {
	c.Requests = append(c.Requests, req)
	if err := ctx.Err(); err != nil {
		return llm.Completion{}, &llm.TransportError{Provider: "fake", Message: "context done", Cause: err}
	}
	if len(c.Responses) == 0 {
		return llm.Completion{}, &llm.TransportError{Provider: "fake", Message: "no scripted response left"}
	}
	next := c.Responses[0]
	c.Responses = c.Responses[1:]
	return next.Completion, next.Err
}

// Model implements llm.Client.
func (c *Client) Model() string { return "fake-model" }

// Close implements llm.Client.
func (c *Client) Close() error {
	c.Closed = true
	return nil
}

// LastPrompt returns the most recent prompt, or "" when nothing was sent.
func (c *Client) LastPrompt() string {
	if len(c.Requests) == 0 {
		return ""
	}
	return c.Requests[len(c.Requests)-1].Prompt
}
