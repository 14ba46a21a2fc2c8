package mover

import (
	"errors"
	"fmt"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

var (
	// ErrMoverIsNotConstructed is returned when using an improperly
	// initialized Mover.
	ErrMoverIsNotConstructed = errors.New("Mover must be created via NewMover or RestoreMover constructor")

	// ErrTierNotServed is returned when a mover is asked to take a move of
	// a tier above their capability.
	ErrTierNotServed = errors.New("mover does not serve this move type")
)

// Mover represents a service provider's profile in the marketplace.
// It is an aggregate root distinct from the provider's authentication
// identity: the userID field links to the external auth account, while the
// profile id is what moves are assigned to.
//
// Business rules:
//   - must have a valid UUID, non-empty userID and name, and a valid tier
//   - can only take moves whose tier is at or below maxTier
//   - crew members are owned child entities, added through the aggregate
type Mover struct {
	id      kernel.UUID
	userID  string
	name    string
	maxTier kernel.MoveType
	crew    []*CrewMember

	guard guard.ConstructorGuard
}

// NewMover creates a mover profile with no crew.
//
// Parameters:
//   - id: profile identifier
//   - userID: external authentication account id (opaque string)
//   - name: display name of the moving company or individual
//   - maxTier: highest service tier the mover can serve
func NewMover(id kernel.UUID, userID string, name string, maxTier kernel.MoveType) (*Mover, error) {
	m := &Mover{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setUserID(userID),
		m.setName(name),
		m.setMaxTier(maxTier),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMover reconstructs a mover profile from persistence together with
// its crew members.
func RestoreMover(
	id kernel.UUID,
	userID string,
	name string,
	maxTier kernel.MoveType,
	crew []*CrewMember,
) (*Mover, error) {
	m, err := NewMover(id, userID, name, maxTier)
	if err != nil {
		return nil, err
	}

	for _, member := range crew {
		if err := member.Validate(); err != nil {
			return nil, err
		}
	}
	m.crew = crew

	return m, nil
}

// Validate ensures the mover was built through a constructor.
func (m *Mover) Validate() error {
	if m == nil {
		return ErrMoverIsNotConstructed
	}
	return m.guard.Validate(ErrMoverIsNotConstructed)
}

// IsEqual compares two movers by their profile identifiers.
func (m *Mover) IsEqual(other *Mover) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the mover profile identifier.
func (m *Mover) ID() kernel.UUID {
	return m.id
}

// UserID returns the external authentication account id.
func (m *Mover) UserID() string {
	return m.userID
}

// Name returns the mover's display name.
func (m *Mover) Name() string {
	return m.name
}

// MaxTier returns the highest tier the mover can serve.
func (m *Mover) MaxTier() kernel.MoveType {
	return m.maxTier
}

// CrewMembers returns the mover's crew in insertion order.
func (m *Mover) CrewMembers() []*CrewMember {
	return m.crew
}

// CanServe reports whether the mover may take a move of the given tier.
func (m *Mover) CanServe(tier kernel.MoveType) bool {
	return !tier.RanksAbove(m.maxTier)
}

// TakeMove checks that the mover can serve the given move.
// Dispatch uses this as the capability gate before assignment; the actual
// status change happens on the Move aggregate.
func (m *Mover) TakeMove(mv *move.Move) error {
	if err := mv.Validate(); err != nil {
		return err
	}

	if !m.CanServe(mv.MoveType()) {
		return fmt.Errorf("%w: move %s is %s, mover serves up to %s",
			ErrTierNotServed, mv.ID(), mv.MoveType(), m.maxTier)
	}

	return nil
}

// AddCrewMember creates and attaches a new crew member to the profile.
func (m *Mover) AddCrewMember(name string, role string) error {
	member, err := NewCrewMember(kernel.NewUUID(), name, role)
	if err != nil {
		return err
	}

	m.crew = append(m.crew, member)
	return nil
}

func (m *Mover) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Mover) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	m.userID = userID
	return nil
}

func (m *Mover) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Mover) setMaxTier(maxTier kernel.MoveType) error {
	if err := maxTier.Validate(); err != nil {
		return err
	}
	m.maxTier = maxTier
	return nil
}
