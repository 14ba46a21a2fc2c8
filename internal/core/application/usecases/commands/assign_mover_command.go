package commands

import (
	"errors"

	"moving/internal/pkg/guard"
)

var ErrAssignMoverCommandIsNotConstructed = errors.New(
	"AssignMoverCommand must be created via NewAssignMoverCommand constructor",
)

// AssignMoverCommand triggers the assignment of an available mover to a pending move.
// This command represents the business operation of matching moving crews with bookings.
// It finds the first move in "accepted" status and assigns the most suitable mover.
//
// Example:
//
//	cmd := NewAssignMoverCommand()
//	handler := NewAssignMoverCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No moves to assign or no available movers: %v", err)
//	}
type AssignMoverCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignMoverCommand creates a new command to trigger mover assignment.
// This is a parameterless command that initiates the mover-move matching process.
func NewAssignMoverCommand() AssignMoverCommand {
	return AssignMoverCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignMoverCommandIsNotConstructed if validation fails.
func (c *AssignMoverCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignMoverCommandIsNotConstructed,
	)
}
