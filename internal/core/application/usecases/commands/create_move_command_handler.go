package commands

import (
	"context"

	"moving/internal/core/domain/model/move"
)

// CreateMoveCommandHandler handles the business logic for booking a move.
// Creates new moves in "accepted" status, ready for mover assignment.
//
// Example:
//
//	handler := NewCreateMoveCommandHandler(uowFactory)
//	cmd, _ := NewCreateMoveCommand(kernel.NewUUID(), clientID, kernel.MoveTypeLight)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("move creation failed: %w", err)
//	}
//	// Move is now booked and ready for mover assignment
type CreateMoveCommandHandler struct {
	uowFactory MoveUoWFactory
}

// NewCreateMoveCommandHandler creates a handler for move booking operations.
// Requires a MoveUoWFactory for transactional persistence.
func NewCreateMoveCommandHandler(uowFactory MoveUoWFactory) CreateMoveCommandHandler {
	return CreateMoveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the move booking command.
// Creates the move aggregate in "accepted" status.
// Uses a transaction to ensure the move is properly persisted or rolled back on error.
func (h *CreateMoveCommandHandler) Handle(ctx context.Context, cmd CreateMoveCommand) error {
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
	mv, err := move.NewMove(cmd.MoveID(), cmd.ClientID(), cmd.MoveType())
	if err != nil {
		return err
	}

	if err = moveRepo.Add(ctx, mv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
