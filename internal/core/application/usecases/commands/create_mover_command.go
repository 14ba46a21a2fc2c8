package commands

import (
	"errors"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/guard"
)

var (
	ErrCreateMoverCommandIsNotConstructed = errors.New(
		"CreateMoverCommand must be created via NewCreateMoverCommand constructor",
	)
	ErrUserIDIsRequired = errors.New("user id is required")
	ErrNameIsRequired   = errors.New("name is required")
)

// CreateMoverCommand represents a request to register a new mover profile.
// Encapsulates the account link, display name, and the highest tier the
// mover's crew and equipment can serve.
//
// Example:
//
//	moverID := kernel.NewUUID()
//	cmd, err := NewCreateMoverCommand(moverID, userID, "Smith & Sons", kernel.MoveTypePremium)
//	if err != nil {
//	    return fmt.Errorf("invalid mover data: %w", err)
//	}
//
//	handler := NewCreateMoverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create mover: %w", err)
//	}
type CreateMoverCommand struct { //nolint:recvcheck //using for validation
	moverID kernel.UUID
	userID  string
	name    string
	maxTier kernel.MoveType

	guard guard.ConstructorGuard
}

// NewCreateMoverCommand creates a command to register a new mover profile.
// Validates that the id is valid, user id and name are not empty, and the
// tier is a recognized value. Returns an error if any validation fails.
func NewCreateMoverCommand(
	moverID kernel.UUID, userID string, name string, maxTier kernel.MoveType,
) (CreateMoverCommand, error) {
	moverCommand := CreateMoverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		moverCommand.setMoverID(moverID),
		moverCommand.setUserID(userID),
		moverCommand.setName(name),
		moverCommand.setMaxTier(maxTier),
	); err != nil {
		return CreateMoverCommand{}, err
	}

	return moverCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateMoverCommandIsNotConstructed if validation fails.
func (c CreateMoverCommand) Validate() error {
	return c.guard.Validate(ErrCreateMoverCommandIsNotConstructed)
}

// MoverID returns the unique identifier for the mover profile.
func (c CreateMoverCommand) MoverID() kernel.UUID {
	return c.moverID
}

// UserID returns the identifier of the account that owns the profile.
func (c CreateMoverCommand) UserID() string {
	return c.userID
}

// Name returns the mover's display name.
func (c CreateMoverCommand) Name() string {
	return c.name
}

// MaxTier returns the highest service tier the mover can serve.
func (c CreateMoverCommand) MaxTier() kernel.MoveType {
	return c.maxTier
}

func (c *CreateMoverCommand) setMoverID(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return err
	}

	c.moverID = moverID
	return nil
}

func (c *CreateMoverCommand) setUserID(userID string) error {
	if userID == "" {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}

func (c *CreateMoverCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMoverCommand) setMaxTier(maxTier kernel.MoveType) error {
	if err := maxTier.Validate(); err != nil {
		return err
	}

	c.maxTier = maxTier
	return nil
}
