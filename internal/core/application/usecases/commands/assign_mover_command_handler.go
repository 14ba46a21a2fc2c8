package commands

import (
	"context"
	"errors"

	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"
)

var (
	ErrNoFreeMoversFound = errors.New("no free movers found")
	ErrNoMoveFound       = errors.New("no move found")
)

// AssignMoverCommandHandler orchestrates the mover assignment process.
// Finds pending moves and matches them with available movers using business rules.
// Ensures transactional consistency when updating both move and mover states.
//
// Example:
//
//	handler := NewAssignMoverCommandHandler(uowFactory)
//	cmd := NewAssignMoverCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoMoveFound):
//	    log.Println("No pending moves")
//	case errors.Is(err, ErrNoFreeMoversFound):
//	    log.Println("All movers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Mover assigned successfully")
//	}
type AssignMoverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignMoverCommandHandler creates a handler for mover assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignMoverCommandHandler(uowFactory UoWFactory) AssignMoverCommandHandler {
	return AssignMoverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mover assignment command.
// Retrieves the first pending move, finds available movers, and uses MoveDispatcher
// to select the best match. Updates both entities within a single transaction.
// Returns specific errors for no moves (ErrNoMoveFound) or no movers (ErrNoFreeMoversFound).
func (h AssignMoverCommandHandler) Handle(ctx context.Context, command AssignMoverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	moverRepo := uow.MoverRepository()
	moveRepo := uow.MoveRepository()

	mv, err := moveRepo.GetFirstInAcceptedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoMoveFound
	}
	if err != nil {
		return err
	}

	movers, err := moverRepo.GetAllFree(ctx)
	if err != nil {
		return err
	}
	if len(movers) == 0 {
		return ErrNoFreeMoversFound
	}

	assignedMover, err := services.NewMoveDispatcher().Dispatch(mv, movers)
	// Free movers that all serve a lower tier are the same steady state as
	// no free movers at all: wait for a capable crew to come free.
	if errors.Is(err, services.ErrMoverNotFound) {
		return ErrNoFreeMoversFound
	}
	if err != nil {
		return err
	}

	if err = moveRepo.Update(ctx, mv); err != nil {
		return err
	}

	if err = moverRepo.Update(ctx, assignedMover); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
