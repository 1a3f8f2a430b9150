package challenge

import "time"

// Status is the lifecycle state of a challenge. The set is closed: a
// challenge is PENDING until it becomes COMPLETED or SKIPPED, and both of
// those are terminal.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusSkipped   Status = "SKIPPED"
)

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusSkipped
}

// Challenge is a single puzzle instance owned by one user. Challenges are
// created PENDING by the generation pipeline, mutated only through the
// lifecycle service, and kept as history once terminal.
type Challenge struct {
	ID      int64
	OwnerID string

	Title       string
	Description string

	// Solution is fixed at creation. It is never exposed to the owning
	// user through the public listing; only the admin view shows it.
	Solution int

	// Difficulty is always within [1,5].
	Difficulty int

	Status Status

	// FailedAttempts counts wrong answers while the challenge was PENDING.
	FailedAttempts int

	// LastAttemptAt is the time of the most recent submission attempt.
	// Nil until the first attempt. Drives the submission cooldown.
	LastAttemptAt *time.Time

	// CompletedAt is set exactly when the challenge leaves PENDING,
	// for both COMPLETED and SKIPPED.
	CompletedAt *time.Time

	// Version increases on every persisted mutation. A write carrying a
	// stale version is rejected by the store as a conflict.
	Version int64
}

// GeneratedChallenge is the validated output of the generation pipeline.
// It is not persisted directly; the lifecycle service turns it into a
// PENDING Challenge.
type GeneratedChallenge struct {
	Title       string
	Description string
	Solution    int
	Difficulty  int

	// Prompt is the user instruction the challenge was generated from,
	// retained for diagnostics.
	Prompt string
}
