package commands

import (
	"context"
)

// AddCrewMemberCommandHandler handles the business logic for growing a
// mover's crew. Loads the profile, attaches the member, and persists the
// updated aggregate.
type AddCrewMemberCommandHandler struct {
	uowFactory MoverUoWFactory
}

// NewAddCrewMemberCommandHandler creates a handler for crew extension operations.
// Requires a MoverUoWFactory for transactional persistence.
func NewAddCrewMemberCommandHandler(uowFactory MoverUoWFactory) AddCrewMemberCommandHandler {
	return AddCrewMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the crew extension command.
// Retrieves the mover aggregate, adds the crew member, and updates the
// aggregate within a single transaction.
func (h *AddCrewMemberCommandHandler) Handle(ctx context.Context, cmd AddCrewMemberCommand) error {
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
	m, err := moverRepo.Get(ctx, cmd.MoverID())
	if err != nil {
		return err
	}

	if err = m.AddCrewMember(cmd.Name(), cmd.Role()); err != nil {
		return err
	}

	if err = moverRepo.Update(ctx, m); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
