package services

import (
	"errors"

	"moving/internal/core/domain/model/move"
	"moving/internal/core/domain/model/mover"
)

// ErrMoverNotFound is returned when no suitable mover is available for
// dispatch: either none were provided or none can serve the move's tier.
var ErrMoverNotFound = errors.New("mover not found")

// MoveDispatcher is a domain service that matches a pending move with the
// most suitable available mover.
//
// Selection prefers the tightest capability fit: among movers that can serve
// the move's tier, the one with the lowest maximum tier wins, so premium
// crews stay free for premium moves. Ties go to the first candidate.
type MoveDispatcher struct{}

// NewMoveDispatcher creates a MoveDispatcher instance.
func NewMoveDispatcher() MoveDispatcher {
	return MoveDispatcher{}
}

// Dispatch selects a mover for the given move and executes the assignment.
// Both aggregates are mutated together: the chosen mover takes the move and
// the move records the mover's profile id, advancing to mover_assigned.
//
// Returns ErrMoverNotFound when no provided mover can serve the move's tier.
func (d MoveDispatcher) Dispatch(mv *move.Move, movers []*mover.Mover) (*mover.Mover, error) {
	if err := mv.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findBestMover(mv, movers)
	if err != nil {
		return nil, err
	}

	if err = best.TakeMove(mv); err != nil {
		return nil, err
	}

	if err = mv.AssignMover(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

func (d MoveDispatcher) findBestMover(mv *move.Move, movers []*mover.Mover) (*mover.Mover, error) {
	var best *mover.Mover

	for _, candidate := range movers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.CanServe(mv.MoveType()) {
			continue
		}

		if best == nil || candidate.MaxTier().Rank() < best.MaxTier().Rank() {
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrMoverNotFound
	}

	return best, nil
}
