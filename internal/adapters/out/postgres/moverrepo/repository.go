package moverrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
	"moving/internal/core/domain/model/mover"
	"moving/internal/pkg/errs"
)

// GormMoverRepository implements MoverRepository using GORM.
type GormMoverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMoverRepository creates a new GORM mover repository.
func NewGormMoverRepository(db *gorm.DB, tracker aggregateTracker) *GormMoverRepository {
	return &GormMoverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new mover to the database.
func (r *GormMoverRepository) Add(ctx context.Context, aggregate *mover.Mover) error {
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

// Update saves an existing mover to the database.
func (r *GormMoverRepository) Update(ctx context.Context, aggregate *mover.Mover) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a mover by ID.
func (r *GormMoverRepository) Get(ctx context.Context, id kernel.UUID) (*mover.Mover, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MoverDTO
	if err := r.db.WithContext(ctx).Preload("CrewMembers").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mover", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the mover profile owned by the given account.
func (r *GormMoverRepository) GetByUserID(ctx context.Context, userID string) (*mover.Mover, error) {
	if userID == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}

	var dto MoverDTO
	if err := r.db.WithContext(ctx).Preload("CrewMembers").First(&dto, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mover", userID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllFree retrieves all movers that are not currently working a move.
// A mover is considered busy while any move assigned to them sits in an
// active status; completed and cancelled moves free the mover again.
func (r *GormMoverRepository) GetAllFree(ctx context.Context) ([]*mover.Mover, error) {
	terminal := []string{
		move.StatusCompleted.String(),
		move.StatusCancelledByClient.String(),
		move.StatusCancelledByMover.String(),
	}

	var dtos []MoverDTO
	// Join with moves to find movers without any move still in flight.
	if err := r.db.WithContext(ctx).
		Preload("CrewMembers").
		Table("movers").
		Select("movers.*").
		Joins("LEFT JOIN moves ON movers.id = moves.mover_profile_id AND moves.status NOT IN ?", terminal).
		Where("moves.mover_profile_id IS NULL").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	movers := make([]*mover.Mover, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		movers = append(movers, m)
	}

	return movers, nil
}
