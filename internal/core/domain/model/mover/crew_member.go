package mover

import (
	"errors"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

// ErrCrewMemberIsNotConstructed indicates that a CrewMember was not created
// through the NewCrewMember constructor.
var ErrCrewMemberIsNotConstructed = errors.New("CrewMember must be created via NewCrewMember constructor")

// CrewMember is a child entity of the Mover aggregate: a person working
// under the mover's profile. Crew members carry no authentication identity
// of their own; they exist for capacity display and dispatch records.
type CrewMember struct {
	id   kernel.UUID
	name string
	role string

	guard guard.ConstructorGuard
}

// NewCrewMember creates a crew member with a validated id and non-empty name.
// Role is free-form ("driver", "carrier", ...) and may be empty.
func NewCrewMember(id kernel.UUID, name string, role string) (*CrewMember, error) {
	member := &CrewMember{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		member.setID(id),
		member.setName(name),
	); err != nil {
		return nil, err
	}

	member.role = role
	return member, nil
}

// Validate ensures the crew member was built through the constructor.
func (c *CrewMember) Validate() error {
	if c == nil {
		return ErrCrewMemberIsNotConstructed
	}
	return c.guard.Validate(ErrCrewMemberIsNotConstructed)
}

// ID returns the crew member's identifier.
func (c *CrewMember) ID() kernel.UUID {
	return c.id
}

// Name returns the crew member's display name.
func (c *CrewMember) Name() string {
	return c.name
}

// Role returns the crew member's role label.
func (c *CrewMember) Role() string {
	return c.role
}

func (c *CrewMember) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *CrewMember) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("crew member name")
	}
	c.name = name
	return nil
}
