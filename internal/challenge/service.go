package challenge

import (
	"context"
	"fmt"
	"time"
)

// Service drives the challenge lifecycle: answer submission, skipping,
// and gated generation of new challenges. All operations act on behalf of
// a single owner; ownership is enforced by the repo lookup.
type Service struct {
	repo   Repo
	gen    Generator
	config Config
	now    func() time.Time
}

// NewService creates a Service. gen may be nil for callers that only
// read or submit; Skip and GenerateNew require it.
func NewService(repo Repo, gen Generator, cfg Config) *Service {
	return &Service{
		repo:   repo,
		gen:    gen,
		config: cfg,
		now:    time.Now,
	}
}

// Submit applies an answer to a pending challenge. A correct answer
// completes the challenge; a wrong one increments its failed-attempt
// counter. Either way the attempt is recorded and the whole mutation is
// committed as one version-checked write, so a concurrent submit or skip
// racing on the same challenge loses with ErrConflict.
func (s *Service) Submit(ctx context.Context, ownerID string, id int64, answer int) (*Challenge, error) {
	ch, err := s.repo.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if ch.Status != StatusPending {
		return nil, fmt.Errorf("challenge %d is already %s: %w", id, ch.Status, ErrConflict)
	}

	now := s.now()
	if !CanSubmit(ch.LastAttemptAt, s.config.Cooldown, now) {
		return nil, &RateLimitedError{
			RemainingMinutes: RemainingCooldown(ch.LastAttemptAt, s.config.Cooldown, now),
		}
	}

	ch.LastAttemptAt = &now
	if answer == ch.Solution {
		ch.Status = StatusCompleted
		ch.CompletedAt = &now
	} else {
		ch.FailedAttempts++
	}

	return s.repo.Update(ctx, ch)
}

// Skip marks a pending challenge SKIPPED and generates a replacement at a
// difficulty derived from the owner's completed count. The skip is
// committed before regeneration starts; if regeneration fails the skip
// stands and the failure surfaces as a RegenerationError.
func (s *Service) Skip(ctx context.Context, ownerID string, id int64) error {
	ch, err := s.repo.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if ch.Status != StatusPending {
		return fmt.Errorf("challenge %d is already %s: %w", id, ch.Status, ErrConflict)
	}

	now := s.now()
	ch.Status = StatusSkipped
	ch.CompletedAt = &now
	if _, err := s.repo.Update(ctx, ch); err != nil {
		return err
	}

	// The skip vacated a pending slot, so regeneration bypasses the
	// pending ceiling.
	if err := s.regenerate(ctx, ownerID); err != nil {
		return &RegenerationError{Err: err}
	}
	return nil
}

func (s *Service) regenerate(ctx context.Context, ownerID string) error {
	completed, err := s.repo.CountByStatus(ctx, ownerID, StatusCompleted)
	if err != nil {
		return err
	}
	_, err = s.createChallenge(ctx, ownerID, NextDifficulty(completed))
	return err
}

// GenerateNew creates a fresh pending challenge for the owner. The
// pending ceiling is checked first, before any LLM call. Difficulty comes
// from the adaptation policy unless the caller supplies an override,
// which bypasses the policy but is still clamped.
func (s *Service) GenerateNew(ctx context.Context, ownerID string, override *int) (*Challenge, error) {
	pending, err := s.repo.CountByStatus(ctx, ownerID, StatusPending)
	if err != nil {
		return nil, err
	}
	if pending >= s.config.MaxPending {
		return nil, &LimitExceededError{Limit: s.config.MaxPending}
	}

	var difficulty int
	if override != nil {
		difficulty = ClampDifficulty(*override)
	} else {
		completed, err := s.repo.CountByStatus(ctx, ownerID, StatusCompleted)
		if err != nil {
			return nil, err
		}
		difficulty = NextDifficulty(completed)
	}

	return s.createChallenge(ctx, ownerID, difficulty)
}

func (s *Service) createChallenge(ctx context.Context, ownerID string, difficulty int) (*Challenge, error) {
	gc, err := s.gen.Generate(ctx, difficulty)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &Challenge{
		OwnerID:     ownerID,
		Title:       gc.Title,
		Description: gc.Description,
		Solution:    gc.Solution,
		Difficulty:  gc.Difficulty,
		Status:      StatusPending,
	})
}

// List returns all of the owner's challenges, newest first.
func (s *Service) List(ctx context.Context, ownerID string) ([]*Challenge, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
