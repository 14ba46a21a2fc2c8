package commands

import (
	"errors"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/guard"
)

var ErrCreateMoveCommandIsNotConstructed = errors.New(
	"CreateMoveCommand must be created via NewCreateMoveCommand constructor",
)

// CreateMoveCommand represents a client's request to book a new move.
// Encapsulates the booking details: who books and at which service tier.
//
// Example:
//
//	moveID := kernel.NewUUID()
//	cmd, err := NewCreateMoveCommand(moveID, clientID, kernel.MoveTypeRegular)
//	if err != nil {
//	    return fmt.Errorf("invalid move data: %w", err)
//	}
//
//	handler := NewCreateMoveCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create move: %w", err)
//	}
//	fmt.Printf("Move %s booked and awaiting mover assignment", moveID)
type CreateMoveCommand struct { //nolint:recvcheck //using for validation
	moveID   kernel.UUID
	clientID kernel.UUID
	moveType kernel.MoveType

	guard guard.ConstructorGuard
}

// NewCreateMoveCommand creates a command to book a new move.
// Validates that both ids are valid and the tier is a recognized value.
// Returns an error if any validation fails.
func NewCreateMoveCommand(
	moveID kernel.UUID, clientID kernel.UUID, moveType kernel.MoveType,
) (CreateMoveCommand, error) {
	moveCommand := CreateMoveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		moveCommand.setMoveID(moveID),
		moveCommand.setClientID(clientID),
		moveCommand.setMoveType(moveType),
	); err != nil {
		return CreateMoveCommand{}, err
	}

	return moveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateMoveCommandIsNotConstructed if validation fails.
func (c CreateMoveCommand) Validate() error {
	return c.guard.Validate(ErrCreateMoveCommandIsNotConstructed)
}

// MoveID returns the unique identifier for the move.
func (c CreateMoveCommand) MoveID() kernel.UUID {
	return c.moveID
}

// ClientID returns the booking client's identifier.
func (c CreateMoveCommand) ClientID() kernel.UUID {
	return c.clientID
}

// MoveType returns the service tier the client booked.
func (c CreateMoveCommand) MoveType() kernel.MoveType {
	return c.moveType
}

func (c *CreateMoveCommand) setMoveID(moveID kernel.UUID) error {
	if err := moveID.Validate(); err != nil {
		return err
	}

	c.moveID = moveID
	return nil
}

func (c *CreateMoveCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateMoveCommand) setMoveType(moveType kernel.MoveType) error {
	if err := moveType.Validate(); err != nil {
		return err
	}

	c.moveType = moveType
	return nil
}
