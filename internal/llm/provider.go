package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the external text-generation service.
// The challenge generation pipeline depends only on this interface, so it
// can be driven by a MockProvider in tests.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its response.
	// The Content of the response is opaque to the provider layer: it may
	// be plain text, a JSON document, or a full response envelope. Cleanup
	// and field validation happen downstream in the challenge package.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. Challenge generation is
	// single-turn, so this usually contains one user message.
	Messages []Message

	// Schema, when set, instructs the provider to use its native
	// structured-output mechanism and validate the result against it.
	// When nil, the response Content is whatever text the model produced.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines a JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "code-challenge".
	Name string

	// Description is sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the raw generated output. Not guaranteed to be valid
	// JSON; the model may wrap its answer in markdown fences or prose.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
