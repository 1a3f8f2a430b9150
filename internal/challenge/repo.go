package challenge

import "context"

// Repo is the persistence capability the lifecycle depends on. The core
// only needs to know that writes can fail with ErrConflict; how the store
// enforces that is its own business.
type Repo interface {
	// Get returns the challenge with the given id owned by ownerID, or
	// ErrNotFound. Lookups are always ownership-scoped.
	Get(ctx context.Context, id int64, ownerID string) (*Challenge, error)

	// Create persists a new challenge and returns it with ID and Version
	// assigned.
	Create(ctx context.Context, ch *Challenge) (*Challenge, error)

	// Update persists a mutation with compare-and-swap on Version. It
	// returns ErrConflict when the stored version has moved since the
	// challenge was loaded, and the updated challenge otherwise.
	Update(ctx context.Context, ch *Challenge) (*Challenge, error)

	// CountByStatus counts the owner's challenges in the given status.
	CountByStatus(ctx context.Context, ownerID string, status Status) (int, error)

	// ListByOwner returns the owner's challenges, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*Challenge, error)
}
