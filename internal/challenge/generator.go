package challenge

import (
	"context"
	"fmt"

	"github.com/chriscasey/codechallenger/internal/llm"
)

// Generator produces validated challenge payloads.
type Generator interface {
	// Generate produces a single challenge at the given difficulty.
	// The difficulty is caller intent and is clamped before use.
	Generate(ctx context.Context, difficulty int) (*GeneratedChallenge, error)
}

// LLMGenerator implements Generator using an LLM provider. Throttle
// retries are the provider's concern (see llm.WithRetry); a payload the
// validator rejects is terminal here and deliberately not retried, since
// retrying would hide a systemic prompt/schema mismatch.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates an LLMGenerator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate runs the full pipeline: prompt, call, extract, clean, validate.
func (g *LLMGenerator) Generate(ctx context.Context, difficulty int) (*GeneratedChallenge, error) {
	d := ClampDifficulty(difficulty)

	ctx = llm.WithPurpose(ctx, "challenge-gen")
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	userMsg := buildUserMessage(d)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	candidate := CleanCandidate(ExtractText(resp.Content))

	gc, err := ParsePayload(candidate, d)
	if err != nil {
		return nil, err
	}

	gc.Prompt = userMsg
	return gc, nil
}
