package moverepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
	"moving/internal/core/ports"
	"moving/internal/pkg/errs"
)

// GormMoveRepository implements MoveRepository using GORM.
type GormMoveRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMoveRepository creates a new GORM move repository.
func NewGormMoveRepository(db *gorm.DB, tracker aggregateTracker) *GormMoveRepository {
	return &GormMoveRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new move to the database.
func (r *GormMoveRepository) Add(ctx context.Context, aggregate *move.Move) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing move to the database.
func (r *GormMoveRepository) Update(ctx context.Context, aggregate *move.Move) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MoveDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a move by ID.
func (r *GormMoveRepository) Get(ctx context.Context, id kernel.UUID) (*move.Move, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MoveDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("move", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByClient retrieves all moves booked by the given client, newest first.
func (r *GormMoveRepository) GetByClient(ctx context.Context, clientID kernel.UUID) ([]*move.Move, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MoveDTO
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	moves := make([]*move.Move, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}

	return moves, nil
}

// GetFirstInAcceptedStatus retrieves the oldest move still waiting for a mover.
func (r *GormMoveRepository) GetFirstInAcceptedStatus(ctx context.Context) (*move.Move, error) {
	var dto MoveDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		First(&dto, "status = ?", move.StatusAccepted.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("move", "first in accepted status")
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus persists a status transition conditionally: the row is only
// written while its stored status still equals from. A zero row count means
// another transition got there first and the caller's read is stale.
func (r *GormMoveRepository) UpdateStatus(ctx context.Context, aggregate *move.Move, from move.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MoveDTO{}).
		Where("id = ? AND status = ?", dto.ID, from.String()).
		Updates(map[string]any{
			"status":       dto.Status,
			"completed_at": dto.CompletedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrStatusConflict
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
