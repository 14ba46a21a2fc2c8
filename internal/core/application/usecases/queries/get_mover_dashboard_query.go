package queries

import (
	"errors"
	"time"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
	"moving/internal/pkg/guard"
)

var ErrGetMoverDashboardQueryIsNotConstructed = errors.New(
	"GetMoverDashboardQuery must be created via NewGetMoverDashboardQuery constructor",
)

// GetMoverDashboardQuery builds the work overview for one mover profile:
// the moves currently assigned to the mover plus lifetime completion counts.
//
// Example:
//
//	query, err := NewGetMoverDashboardQuery(moverProfileID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetMoverDashboardQueryHandler(db)
//	dashboard, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build dashboard: %w", err)
//	}
//	fmt.Printf("%d active, %d completed\n", len(dashboard.ActiveMoves), dashboard.CompletedCount)
type GetMoverDashboardQuery struct {
	moverProfileID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMoverDashboardQuery creates a dashboard query for one mover profile.
// Validates that the profile id is a constructed UUID.
func NewGetMoverDashboardQuery(moverProfileID kernel.UUID) (GetMoverDashboardQuery, error) {
	if err := moverProfileID.Validate(); err != nil {
		return GetMoverDashboardQuery{}, err
	}

	return GetMoverDashboardQuery{
		moverProfileID: moverProfileID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMoverDashboardQueryIsNotConstructed if validation fails.
func (q GetMoverDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetMoverDashboardQueryIsNotConstructed)
}

// MoverProfileID returns the profile the dashboard is built for.
func (q GetMoverDashboardQuery) MoverProfileID() kernel.UUID {
	return q.moverProfileID
}

// MoverDashboardMove represents one move assigned to the mover.
type MoverDashboardMove struct {
	ID        kernel.UUID
	ClientID  kernel.UUID
	MoveType  kernel.MoveType
	Status    move.Status
	CreatedAt time.Time
}

// GetMoverDashboardQueryResponse aggregates the mover's current workload:
// the active moves, the number of moves completed in the current calendar
// month, the lifetime cancellation counter, and the crew headcount.
type GetMoverDashboardQueryResponse struct {
	MoverProfileID     kernel.UUID
	ActiveMoves        []MoverDashboardMove
	CompletedThisMonth int
	CancelledCount     int
	CrewSize           int
}
