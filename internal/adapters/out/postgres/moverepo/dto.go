// Package moverepo provides data transfer objects and mapping functions for move persistence.
// This package implements the repository pattern for the move domain aggregate, handling
// the conversion between domain entities and database representations.
package moverepo

import (
	"time"

	"github.com/google/uuid"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
)

// MoveDTO represents the database structure for persisting move aggregates.
// Maps move domain entities to relational database tables with proper indexing
// for efficient querying by status and mover assignment.
type MoveDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	MoverProfileID *uuid.UUID `gorm:"type:uuid;index"`
	MoveType       string     `gorm:"type:varchar(32);not null"`
	Status         string     `gorm:"type:varchar(32);not null;index"`
	CreatedAt      time.Time  `gorm:"not null"`
	CompletedAt    *time.Time
}

// TableName specifies the database table name for move entities.
// Overrides GORM's default naming convention to use "moves".
func (MoveDTO) TableName() string {
	return "moves"
}

// fromDomain converts a move domain aggregate to its database representation.
// Maps all move attributes including optional mover assignment and completion time.
func fromDomain(mv *move.Move) MoveDTO {
	var moverProfileID *uuid.UUID
	if id := mv.MoverProfileID(); id != nil {
		raw := id.Bytes()
		moverProfileID = &raw
	}

	return MoveDTO{
		ID:             mv.ID().Bytes(),
		ClientID:       mv.ClientID().Bytes(),
		MoverProfileID: moverProfileID,
		MoveType:       mv.MoveType().String(),
		Status:         mv.Status().String(),
		CreatedAt:      mv.CreatedAt(),
		CompletedAt:    mv.CompletedAt(),
	}
}

// toDomain converts a database DTO to a move domain aggregate.
// Reconstructs the complete aggregate including status and mover assignment using RestoreMove.
func toDomain(dto MoveDTO) (*move.Move, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var moverProfileID *kernel.UUID
	if dto.MoverProfileID != nil {
		mID, moverErr := kernel.UUIDFromBytes((*dto.MoverProfileID)[:])
		if moverErr != nil {
			return nil, moverErr
		}

		moverProfileID = &mID
	}

	moveType, err := kernel.ParseMoveType(dto.MoveType)
	if err != nil {
		return nil, err
	}

	status, err := move.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return move.RestoreMove(id, clientID, moverProfileID, moveType, status, dto.CreatedAt, dto.CompletedAt)
}
