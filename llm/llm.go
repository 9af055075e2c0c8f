// Package llm defines the minimal language-model contract used by the
// assistant scheduling engine. Provider adapters (Anthropic, OpenAI) live in
// subpackages; a deterministic MockModel supports tests and examples.
//
// The interface is intentionally a single-shot completion: the assistant
// engine renders a scheduling request into one prompt and parses one reply.
// Streaming and tool calling are out of scope for this contract.
package llm

import (
	"context"
	"strings"
)

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface the assistant engine needs to drive
// generation.
type Model interface {
	// Complete returns the model's reply to a single prompt. Instructions
	// carry the system-level framing; prompt carries the request payload.
	Complete(ctx context.Context, instructions, prompt string) (string, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests and examples.
// Replies are selected by substring match against the prompt, falling back to
// a default reply.
type MockModel struct {
	info         Info
	replies      map[string]string
	defaultReply string
	err          error
}

// NewMockModel constructs a MockModel identified by name.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:    Info{Name: name, Provider: "mock"},
		replies: make(map[string]string),
	}
}

// AddReply registers a canned reply returned when the prompt contains match.
func (m *MockModel) AddReply(match, reply string) { m.replies[match] = reply }

// SetDefaultReply registers the reply used when no match applies.
func (m *MockModel) SetDefaultReply(reply string) { m.defaultReply = reply }

// Fail makes every Complete call return err.
func (m *MockModel) Fail(err error) { m.err = err }

// Complete implements Model.
func (m *MockModel) Complete(ctx context.Context, instructions, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.err != nil {
		return "", m.err
	}
	for match, reply := range m.replies {
		if strings.Contains(prompt, match) {
			return reply, nil
		}
	}
	return m.defaultReply, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
