package challenge

// Difficulty bounds for a challenge.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// ClampDifficulty forces d into [MinDifficulty, MaxDifficulty].
// Idempotent: clamping a clamped value is a no-op.
func ClampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

// NextDifficulty computes the difficulty for a user's next challenge from
// their completed-challenge count: one step harder for every three
// completions, capped at MaxDifficulty.
func NextDifficulty(completed int) int {
	d := MinDifficulty + completed/3
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}
