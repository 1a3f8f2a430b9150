package challenge

import (
	"errors"
	"fmt"
)

// ErrNotFound means no challenge with the given id belongs to the acting
// user.
var ErrNotFound = errors.New("challenge not found")

// ErrConflict means the challenge is not in a state that allows the
// requested transition, or a concurrent writer committed first. Callers
// may reload and retry.
var ErrConflict = errors.New("challenge conflict")

// LimitExceededError is returned when a user already has the maximum
// number of pending challenges.
type LimitExceededError struct {
	Limit int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("you already have %d pending challenges; complete or skip some before generating new ones", e.Limit)
}

// RateLimitedError is returned when the submission cooldown for a
// challenge is still active.
type RateLimitedError struct {
	RemainingMinutes int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("submission cooldown active: try again in %d minute(s)", e.RemainingMinutes)
}

// RegenerationError reports that a skip was committed but the replacement
// challenge could not be generated. The skip stands; the user can request
// a new challenge explicitly.
type RegenerationError struct {
	Err error
}

func (e *RegenerationError) Error() string {
	return fmt.Sprintf("challenge skipped, but generating a replacement failed: %v", e.Err)
}

func (e *RegenerationError) Unwrap() error { return e.Err }
