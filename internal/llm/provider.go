// Package llm talks to hosted language models for authoring asset content
// such as example words. Every provider returns JSON checked against the
// requested schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a response for a request.
type Provider interface {
	// Generate runs req. When req.Schema is set the provider asks for
	// structured output and Content holds the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model requests are sent to.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	System   string
	Messages []Message

	// Schema is the shape the answer must take. Nil asks for plain text.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// UserPrompt builds a one-turn request.
func UserPrompt(system, prompt string, schema *Schema) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
		Schema:   schema,
	}
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is who sent a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. Name doubles as the structured output
// name on providers that need one, so it is kebab-case.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a generation result.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is "end" or "max_tokens".
	StopReason string
}

// Usage is the token count of one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

const (
	stopEnd       = "end"
	stopMaxTokens = "max_tokens"
)

// resolveModel maps a short alias to a model ID. Unknown names pass
// through so full IDs work too.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
