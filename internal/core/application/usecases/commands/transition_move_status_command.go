package commands

import (
	"errors"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
	"moving/internal/pkg/guard"
)

var ErrTransitionMoveStatusCommandIsNotConstructed = errors.New(
	"TransitionMoveStatusCommand must be created via NewTransitionMoveStatusCommand constructor",
)

// TransitionMoveStatusCommand represents a mover's request to advance a move
// to its next status. Carries the caller's mover profile id so the handler
// can verify the caller actually works this move.
//
// Example:
//
//	cmd, err := NewTransitionMoveStatusCommand(moveID, callerProfileID, move.StatusLoading)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewTransitionMoveStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition rejected: %w", err)
//	}
type TransitionMoveStatusCommand struct { //nolint:recvcheck //using for validation
	moveID          kernel.UUID
	callerProfileID kernel.UUID
	requested       move.Status

	guard guard.ConstructorGuard
}

// NewTransitionMoveStatusCommand creates a command to advance a move's status.
// Validates that both ids are valid and the requested status belongs to the
// known vocabulary. Whether the transition itself is allowed is decided by
// the aggregate, not the command.
func NewTransitionMoveStatusCommand(
	moveID kernel.UUID, callerProfileID kernel.UUID, requested move.Status,
) (TransitionMoveStatusCommand, error) {
	statusCommand := TransitionMoveStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setMoveID(moveID),
		statusCommand.setCallerProfileID(callerProfileID),
		statusCommand.setRequested(requested),
	); err != nil {
		return TransitionMoveStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionMoveStatusCommandIsNotConstructed if validation fails.
func (c TransitionMoveStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionMoveStatusCommandIsNotConstructed)
}

// MoveID returns the identifier of the move to advance.
func (c TransitionMoveStatusCommand) MoveID() kernel.UUID {
	return c.moveID
}

// CallerProfileID returns the mover profile id of the caller.
func (c TransitionMoveStatusCommand) CallerProfileID() kernel.UUID {
	return c.callerProfileID
}

// Requested returns the status the caller wants the move to enter.
func (c TransitionMoveStatusCommand) Requested() move.Status {
	return c.requested
}

func (c *TransitionMoveStatusCommand) setMoveID(moveID kernel.UUID) error {
	if err := moveID.Validate(); err != nil {
		return err
	}

	c.moveID = moveID
	return nil
}

func (c *TransitionMoveStatusCommand) setCallerProfileID(callerProfileID kernel.UUID) error {
	if err := callerProfileID.Validate(); err != nil {
		return err
	}

	c.callerProfileID = callerProfileID
	return nil
}

func (c *TransitionMoveStatusCommand) setRequested(requested move.Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}

	c.requested = requested
	return nil
}
