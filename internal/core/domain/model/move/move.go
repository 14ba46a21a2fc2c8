package move

import (
	"errors"
	"time"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

var (
	// ErrMoveIsNotConstructed is returned when a Move instance was not
	// created through NewMove or RestoreMove.
	ErrMoveIsNotConstructed = errors.New("Move must be created via NewMove or RestoreMove constructor")

	// ErrMoverAlreadyAssigned is returned when assigning a mover to a move
	// that already has one.
	ErrMoverAlreadyAssigned = errors.New("move already has an assigned mover")

	// ErrNotAssignedToMove is the cause carried by the authorization error
	// when a caller acts on a move assigned to a different mover.
	ErrNotAssignedToMove = errors.New("not assigned to this move")
)

// Move represents a booked move in the marketplace. It is the aggregate root
// that owns the status lifecycle: the status field is only ever mutated
// through the guarded transition methods below, never written directly.
//
// Invariants:
//   - id and clientID are valid UUIDs
//   - moveType is a valid tier
//   - status always belongs to the fixed vocabulary
//   - a terminal move is immutable
//   - forward progress requires the caller to be the assigned mover
type Move struct {
	id             kernel.UUID
	clientID       kernel.UUID
	moverProfileID *kernel.UUID
	moveType       kernel.MoveType
	status         Status
	createdAt      time.Time
	completedAt    *time.Time

	guard guard.ConstructorGuard
}

// NewMove creates a Move in the accepted status, as produced by the checkout
// flow. The mover assignment is empty until dispatch attaches a profile.
func NewMove(id kernel.UUID, clientID kernel.UUID, moveType kernel.MoveType) (*Move, error) {
	m := &Move{
		status:    StatusAccepted,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setClientID(clientID),
		m.setMoveType(moveType),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMove reconstructs a Move from persistence, preserving its status,
// assignment, and timestamps. The restored aggregate behaves identically to
// one advanced through domain operations.
func RestoreMove(
	id kernel.UUID,
	clientID kernel.UUID,
	moverProfileID *kernel.UUID,
	moveType kernel.MoveType,
	status Status,
	createdAt time.Time,
	completedAt *time.Time,
) (*Move, error) {
	m := &Move{
		createdAt:   createdAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setClientID(clientID),
		m.setMoveType(moveType),
		m.setStatus(status),
	); err != nil {
		return nil, err
	}

	if moverProfileID != nil {
		if err := moverProfileID.Validate(); err != nil {
			return nil, err
		}
		m.moverProfileID = moverProfileID
	}

	return m, nil
}

// Validate ensures the Move was built through a constructor.
func (m *Move) Validate() error {
	if m == nil {
		return ErrMoveIsNotConstructed
	}
	return m.guard.Validate(ErrMoveIsNotConstructed)
}

// IsEqual compares two moves by their identifiers.
func (m *Move) IsEqual(other *Move) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the move's unique identifier.
func (m *Move) ID() kernel.UUID {
	return m.id
}

// ClientID returns the identifier of the booking client.
func (m *Move) ClientID() kernel.UUID {
	return m.clientID
}

// MoverProfileID returns the assigned mover's profile id, or nil while the
// move awaits dispatch.
func (m *Move) MoverProfileID() *kernel.UUID {
	return m.moverProfileID
}

// MoveType returns the declared service tier of the move.
func (m *Move) MoveType() kernel.MoveType {
	return m.moveType
}

// Status returns the current lifecycle status.
func (m *Move) Status() Status {
	return m.status
}

// CreatedAt returns the booking time.
func (m *Move) CreatedAt() time.Time {
	return m.createdAt
}

// CompletedAt returns the completion time, or nil while the move is active.
func (m *Move) CompletedAt() *time.Time {
	return m.completedAt
}

// AssignMover attaches a mover profile to a pending move and advances the
// status to mover_assigned. Reassignment is not supported: dispatch runs once
// per move, so a second assignment fails with ErrMoverAlreadyAssigned.
func (m *Move) AssignMover(moverProfileID kernel.UUID) error {
	if err := moverProfileID.Validate(); err != nil {
		return err
	}

	if m.moverProfileID != nil {
		return ErrMoverAlreadyAssigned
	}

	if m.status != StatusAccepted {
		return &InvalidTransitionError{From: m.status, To: StatusMoverAssigned}
	}

	m.status = StatusMoverAssigned
	m.moverProfileID = &moverProfileID
	return nil
}

// Progress advances the move to the requested status on behalf of a mover.
//
// The caller's assignment is checked first: the request fails with a
// NotAuthorizedError unless callerProfileID equals the assigned mover's
// profile id, regardless of whether the requested status would otherwise be
// legal. Only then is the transition validated against the table; illegal
// requests fail with an InvalidTransitionError naming both statuses.
//
// Reaching completed records the completion time and freezes the aggregate.
func (m *Move) Progress(callerProfileID kernel.UUID, requested Status) error {
	if err := callerProfileID.Validate(); err != nil {
		return err
	}

	if m.moverProfileID == nil || !m.moverProfileID.IsEqual(callerProfileID) {
		return errs.NewNotAuthorizedErrorWithCause(
			"moverProfileId", callerProfileID.String(), ErrNotAssignedToMove)
	}

	newStatus, err := m.status.TransitionTo(requested)
	if err != nil {
		return err
	}

	m.status = newStatus
	if newStatus == StatusCompleted {
		now := time.Now().UTC()
		m.completedAt = &now
	}
	return nil
}

func (m *Move) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Move) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	m.clientID = clientID
	return nil
}

func (m *Move) setMoveType(moveType kernel.MoveType) error {
	if err := moveType.Validate(); err != nil {
		return err
	}
	m.moveType = moveType
	return nil
}

func (m *Move) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	m.status = status
	return nil
}
