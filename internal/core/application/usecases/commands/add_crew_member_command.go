package commands

import (
	"errors"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/guard"
)

var (
	ErrAddCrewMemberCommandIsNotConstructed = errors.New(
		"AddCrewMemberCommand must be created via NewAddCrewMemberCommand constructor",
	)
	ErrCrewMemberNameIsRequired = errors.New("crew member name is required")
	ErrCrewMemberRoleIsRequired = errors.New("crew member role is required")
)

// AddCrewMemberCommand represents a request to attach a crew member to an
// existing mover profile.
//
// Example:
//
//	cmd, err := NewAddCrewMemberCommand(moverID, "Alex Carter", "driver")
//	if err != nil {
//	    return fmt.Errorf("invalid crew member data: %w", err)
//	}
//
//	handler := NewAddCrewMemberCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add crew member: %w", err)
//	}
type AddCrewMemberCommand struct { //nolint:recvcheck //using for validation
	moverID kernel.UUID
	name    string
	role    string

	guard guard.ConstructorGuard
}

// NewAddCrewMemberCommand creates a command to add a crew member to a mover.
// Validates that the mover id is valid and name and role are not empty.
func NewAddCrewMemberCommand(moverID kernel.UUID, name string, role string) (AddCrewMemberCommand, error) {
	crewCommand := AddCrewMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		crewCommand.setMoverID(moverID),
		crewCommand.setName(name),
		crewCommand.setRole(role),
	); err != nil {
		return AddCrewMemberCommand{}, err
	}

	return crewCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddCrewMemberCommandIsNotConstructed if validation fails.
func (c AddCrewMemberCommand) Validate() error {
	return c.guard.Validate(ErrAddCrewMemberCommandIsNotConstructed)
}

// MoverID returns the identifier of the mover profile to extend.
func (c AddCrewMemberCommand) MoverID() kernel.UUID {
	return c.moverID
}

// Name returns the new crew member's name.
func (c AddCrewMemberCommand) Name() string {
	return c.name
}

// Role returns the new crew member's role.
func (c AddCrewMemberCommand) Role() string {
	return c.role
}

func (c *AddCrewMemberCommand) setMoverID(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return err
	}

	c.moverID = moverID
	return nil
}

func (c *AddCrewMemberCommand) setName(name string) error {
	if name == "" {
		return ErrCrewMemberNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddCrewMemberCommand) setRole(role string) error {
	if role == "" {
		return ErrCrewMemberRoleIsRequired
	}

	c.role = role
	return nil
}
