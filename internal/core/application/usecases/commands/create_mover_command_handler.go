package commands

import (
	"context"

	"moving/internal/core/domain/model/mover"
)

// CreateMoverCommandHandler handles the business logic for mover registration.
// Creates new mover profiles with an empty crew, available for dispatch.
type CreateMoverCommandHandler struct {
	uowFactory MoverUoWFactory
}

// NewCreateMoverCommandHandler creates a handler for mover registration operations.
// Requires a MoverUoWFactory for transactional persistence.
func NewCreateMoverCommandHandler(uowFactory MoverUoWFactory) CreateMoverCommandHandler {
	return CreateMoverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mover registration command.
// Creates the mover aggregate and persists it within a transaction.
func (h *CreateMoverCommandHandler) Handle(ctx context.Context, cmd CreateMoverCommand) error {
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

	moverRepo := uow.MoverRepository()
	m, err := mover.NewMover(cmd.MoverID(), cmd.UserID(), cmd.Name(), cmd.MaxTier())
	if err != nil {
		return err
	}

	if err = moverRepo.Add(ctx, m); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
