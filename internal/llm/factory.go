package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging and the single-retry-on-throttle policy. rec may be nil to
// skip event logging.
func NewProvider(ctx context.Context, cfg Config, rec EventRecorder) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller -> retry -> logging -> base
	wrapped := base
	if rec != nil {
		wrapped = WithLogging(wrapped, rec)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from environment configuration.
// CODECHAL_* variables take priority; when they select no usable
// provider, standard API key variables are probed instead. rec may be
// nil to skip event logging.
func NewProviderFromEnv(ctx context.Context, rec EventRecorder) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, rec)
}
