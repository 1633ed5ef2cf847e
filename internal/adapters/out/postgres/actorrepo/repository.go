package actorrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormActorRepository implements ActorRepository using GORM.
type GormActorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormActorRepository creates a new GORM actor repository.
func NewGormActorRepository(db *gorm.DB, tracker aggregateTracker) *GormActorRepository {
	return &GormActorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new actor to the database.
func (r *GormActorRepository) Add(ctx context.Context, aggregate *actor.Actor) error {
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

// Update saves an existing actor to the database.
func (r *GormActorRepository) Update(ctx context.Context, aggregate *actor.Actor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an actor by ID.
func (r *GormActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
