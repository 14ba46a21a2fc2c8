// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS pattern: handlers bypass the domain
// aggregates and read directly from the database for efficient projections.
package queries

import (
	"errors"
	"math"
	"time"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

var ErrGetClientMovesQueryIsNotConstructed = errors.New(
	"GetClientMovesQuery must be created via NewGetClientMovesQuery constructor",
)

// GetClientMovesQuery retrieves all moves booked by one client, newest first.
// Powers the client's booking history screen.
//
// Example:
//
//	query, err := NewGetClientMovesQuery(clientID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetClientMovesQueryHandler(db)
//	moves, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get client moves: %w", err)
//	}
type GetClientMovesQuery struct {
	clientID     kernel.UUID
	statusFilter *move.Status
	limit        int
	offset       int

	guard guard.ConstructorGuard
}

// NewGetClientMovesQuery creates a query for one client's booking history.
// Validates that the client id is a constructed UUID.
func NewGetClientMovesQuery(clientID kernel.UUID) (GetClientMovesQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientMovesQuery{}, err
	}

	return GetClientMovesQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetClientMovesQueryIsNotConstructed if validation fails.
func (q GetClientMovesQuery) Validate() error {
	return q.guard.Validate(ErrGetClientMovesQueryIsNotConstructed)
}

// WithStatusFilter narrows the history to moves in one status.
func (q GetClientMovesQuery) WithStatusFilter(status move.Status) (GetClientMovesQuery, error) {
	if err := status.Validate(); err != nil {
		return GetClientMovesQuery{}, err
	}

	q.statusFilter = &status
	return q, nil
}

// WithPaging limits the history to a window of results. A limit of zero
// means unbounded; the offset must not be negative.
func (q GetClientMovesQuery) WithPaging(limit, offset int) (GetClientMovesQuery, error) {
	if limit < 0 {
		return GetClientMovesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, math.MaxInt)
	}
	if offset < 0 {
		return GetClientMovesQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, math.MaxInt)
	}

	q.limit = limit
	q.offset = offset
	return q, nil
}

// ClientID returns the client whose moves are requested.
func (q GetClientMovesQuery) ClientID() kernel.UUID {
	return q.clientID
}

// StatusFilter returns the optional status the history is narrowed to.
func (q GetClientMovesQuery) StatusFilter() *move.Status {
	return q.statusFilter
}

// Limit returns the maximum number of results; zero means unbounded.
func (q GetClientMovesQuery) Limit() int {
	return q.limit
}

// Offset returns the number of results to skip.
func (q GetClientMovesQuery) Offset() int {
	return q.offset
}

// GetClientMovesQueryResponse represents one booked move in the client's history.
type GetClientMovesQueryResponse struct {
	ID             kernel.UUID
	MoverProfileID *kernel.UUID
	MoveType       kernel.MoveType
	Status         move.Status
	CreatedAt      time.Time
	CompletedAt    *time.Time
}
