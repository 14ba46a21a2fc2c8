package ports

import (
	"context"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/mover"
)

// MoverRepository defines the persistence contract for mover aggregates.
// Provides methods for storing, retrieving, and querying mover profiles
// with their complete state including crew members.
type MoverRepository interface {
	// Add persists a new mover aggregate to storage.
	// The mover must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *mover.Mover) error

	// Update persists changes to an existing mover aggregate.
	// The mover must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *mover.Mover) error

	// Get retrieves a mover aggregate by its unique identifier.
	// Returns the complete mover with all crew members.
	Get(ctx context.Context, id kernel.UUID) (*mover.Mover, error)

	// GetByUserID retrieves the mover profile owned by the given account.
	// Used to resolve the caller's profile from authentication headers.
	GetByUserID(ctx context.Context, userID string) (*mover.Mover, error)

	// GetAllFree retrieves all movers that are not currently working a move.
	// A mover is considered free if no move assigned to them is in an
	// active status.
	//
	// Business Rules:
	//   - Movers without any moves: Available
	//   - Movers whose moves are all completed or cancelled: Available
	//   - Movers with a move between mover_assigned and arrived_destination: Unavailable
	GetAllFree(ctx context.Context) ([]*mover.Mover, error)
}
