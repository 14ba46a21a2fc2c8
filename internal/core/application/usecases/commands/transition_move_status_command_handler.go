package commands

import (
	"context"
)

// TransitionMoveStatusCommandHandler handles the business logic for advancing
// a move through its lifecycle. The ordering of checks is fixed: the aggregate
// verifies the caller's authorization before it judges the transition, so an
// outsider probing a move learns nothing about its current status.
//
// Persistence is conditional: the status write only succeeds while the stored
// status still equals the one the handler read, so two movers racing the same
// step cannot both win.
//
// Example:
//
//	handler := NewTransitionMoveStatusCommandHandler(uowFactory)
//	cmd, _ := NewTransitionMoveStatusCommand(moveID, callerID, move.StatusInTransit)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrNotAuthorized):
//	    // caller is not the assigned mover
//	case errors.Is(err, move.ErrInvalidTransition):
//	    // requested step is not the next one
//	case errors.Is(err, ports.ErrStatusConflict):
//	    // a concurrent transition won; re-read and retry
//	}
type TransitionMoveStatusCommandHandler struct {
	uowFactory MoveUoWFactory
}

// NewTransitionMoveStatusCommandHandler creates a handler for status transition operations.
// Requires a MoveUoWFactory for transactional persistence.
func NewTransitionMoveStatusCommandHandler(uowFactory MoveUoWFactory) TransitionMoveStatusCommandHandler {
	return TransitionMoveStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Loads the move, lets the aggregate authorize the caller and validate the
// step, then persists the new status conditioned on the status it read.
func (h *TransitionMoveStatusCommandHandler) Handle(ctx context.Context, cmd TransitionMoveStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	moveRepo := uow.MoveRepository()
	mv, err := moveRepo.Get(ctx, cmd.MoveID())
	if err != nil {
		return err
	}

	from := mv.Status()
	if err = mv.Progress(cmd.CallerProfileID(), cmd.Requested()); err != nil {
		return err
	}

	if err = moveRepo.UpdateStatus(ctx, mv, from); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
