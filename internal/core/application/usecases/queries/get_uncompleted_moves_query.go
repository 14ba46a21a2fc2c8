package queries

import (
	"errors"
	"time"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
	"moving/internal/pkg/guard"
)

var ErrGetUncompletedMovesQueryIsNotConstructed = errors.New(
	"GetUncompletedMovesQuery must be created via NewGetUncompletedMovesQuery constructor",
)

// GetUncompletedMovesQuery retrieves all moves that have not reached a
// terminal status. Used for operational monitoring of in-flight work.
//
// Example:
//
//	query := NewGetUncompletedMovesQuery()
//	handler := NewGetUncompletedMovesQueryHandler(db)
//
//	moves, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending moves: %w", err)
//	}
//
//	fmt.Printf("Found %d moves in flight\n", len(moves))
type GetUncompletedMovesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedMovesQuery creates a query to retrieve in-flight moves.
// This is a parameterless query that fetches every non-terminal move.
func NewGetUncompletedMovesQuery() GetUncompletedMovesQuery {
	return GetUncompletedMovesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUncompletedMovesQueryIsNotConstructed if validation fails.
func (q GetUncompletedMovesQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedMovesQueryIsNotConstructed)
}

// GetUncompletedMovesQueryResponse represents one in-flight move.
type GetUncompletedMovesQueryResponse struct {
	ID             kernel.UUID
	ClientID       kernel.UUID
	MoverProfileID *kernel.UUID
	MoveType       kernel.MoveType
	Status         move.Status
	CreatedAt      time.Time
}
