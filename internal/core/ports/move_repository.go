// Package ports defines repository interfaces for the moving domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
)

// ErrStatusConflict is returned by UpdateStatus when the move's stored status
// no longer matches the status the caller read. It signals a concurrent
// transition that the caller should surface as a conflict rather than retry
// silently.
var ErrStatusConflict = errors.New("move status changed concurrently")

// MoveRepository defines the persistence contract for move aggregates.
// Provides methods for storing, retrieving, and querying move entities
// based on their status and assignment state.
type MoveRepository interface {
	// Add persists a new move aggregate to storage.
	// The move must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *move.Move) error

	// Update persists changes to an existing move aggregate.
	// The move must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *move.Move) error

	// Get retrieves a move aggregate by its unique identifier.
	// Returns the complete move with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*move.Move, error)

	// GetByClient retrieves all moves booked by the given client,
	// newest first.
	GetByClient(ctx context.Context, clientID kernel.UUID) ([]*move.Move, error)

	// GetFirstInAcceptedStatus retrieves the first move still waiting for a
	// mover. Used by the dispatch workflow to find pending moves.
	GetFirstInAcceptedStatus(ctx context.Context) (*move.Move, error)

	// UpdateStatus persists the aggregate's status transition conditionally:
	// the row is written only while its stored status still equals from.
	// Returns ErrStatusConflict when another transition won the race.
	UpdateStatus(ctx context.Context, aggregate *move.Move, from move.Status) error
}
