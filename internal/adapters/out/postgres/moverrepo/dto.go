// Package moverrepo provides data transfer objects and mapping functions for mover persistence.
// This package implements the repository pattern for the mover domain aggregate, handling
// the conversion between domain entities and database representations.
package moverrepo

import (
	"github.com/google/uuid"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/mover"
)

// MoverDTO represents the database structure for persisting mover aggregates.
// Maps mover domain entities to relational database tables with proper foreign key relationships.
type MoverDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(255);not null"`
	MaxTier     string          `gorm:"type:varchar(32);not null"`
	CrewMembers []CrewMemberDTO `gorm:"foreignKey:MoverID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for mover entities.
// Overrides GORM's default naming convention to use "movers" instead of "mover_dtos".
func (MoverDTO) TableName() string {
	return "movers"
}

// CrewMemberDTO represents the database structure for persisting crew member entities.
// Links to the mover profile via foreign key.
type CrewMemberDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	MoverID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Role    string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for crew member entities.
// Overrides GORM's default naming convention to use "crew_members" instead of "crew_member_dtos".
func (CrewMemberDTO) TableName() string {
	return "crew_members"
}

// fromDomain converts a mover domain aggregate to its database representation.
// Maps all aggregate entities including crew members.
func fromDomain(m *mover.Mover) MoverDTO {
	moverID := m.ID().Bytes()
	crew := make([]CrewMemberDTO, 0, len(m.CrewMembers()))

	for _, member := range m.CrewMembers() {
		crew = append(crew, CrewMemberDTO{
			ID:      member.ID().Bytes(),
			MoverID: moverID,
			Name:    member.Name(),
			Role:    member.Role(),
		})
	}

	return MoverDTO{
		ID:          moverID,
		UserID:      m.UserID(),
		Name:        m.Name(),
		MaxTier:     m.MaxTier().String(),
		CrewMembers: crew,
	}
}

// toDomain converts a database DTO to a mover domain aggregate.
// Reconstructs the complete aggregate including all crew members using RestoreMover.
func toDomain(dto MoverDTO) (*mover.Mover, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	maxTier, err := kernel.ParseMoveType(dto.MaxTier)
	if err != nil {
		return nil, err
	}

	crew := make([]*mover.CrewMember, 0, len(dto.CrewMembers))
	for _, memberDto := range dto.CrewMembers {
		member, memberErr := crewMemberToDomain(memberDto)
		if memberErr != nil {
			return nil, memberErr
		}
		crew = append(crew, member)
	}

	return mover.RestoreMover(id, dto.UserID, dto.Name, maxTier, crew)
}

// crewMemberToDomain converts a crew member DTO to a domain entity.
func crewMemberToDomain(dto CrewMemberDTO) (*mover.CrewMember, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return mover.NewCrewMember(id, dto.Name, dto.Role)
}
