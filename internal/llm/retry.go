package llm

import (
	"context"
	"errors"
	"time"
)

// RetryProvider is a decorator implementing the bounded retry contract:
// a throttling response is retried exactly once after a short fixed
// backoff. A second throttling response, a timeout, or any other
// transport failure is terminal and propagated to the caller.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with the single-retry-on-throttle policy.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := r.inner.Generate(ctx, req)
	if err == nil {
		return resp, nil
	}

	// Context errors are never retried: a timeout is not a throttle.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		return nil, err
	}

	wait := r.config.Backoff
	if rl.RetryAfter > 0 {
		wait = rl.RetryAfter
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(wait):
	}

	// Second attempt is final, whatever its outcome.
	return r.inner.Generate(ctx, req)
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}
