package challenge

import "time"

// Config holds the policy knobs for the challenge lifecycle and the
// generation pipeline. All values are injected explicitly so tests can
// vary them per case.
type Config struct {
	// Cooldown is the minimum interval between submission attempts on
	// one challenge.
	Cooldown time.Duration

	// MaxPending caps the number of simultaneously pending challenges
	// per user. Enforced before fresh generation; regeneration after a
	// skip is exempt because the skip just vacated a slot.
	MaxPending int

	// MaxTokens is the token budget for a generation response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Timeout bounds a single generation call. A timed-out call is a
	// terminal transport failure, not a throttle, and is not retried.
	Timeout time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Cooldown:    5 * time.Minute,
		MaxPending:  5,
		MaxTokens:   1024,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
	}
}
