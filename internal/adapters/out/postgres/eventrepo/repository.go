package eventrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/event"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEventRepository implements EventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Add saves a new event to the database.
func (r *GormEventRepository) Add(ctx context.Context, entity *event.Event) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an event by ID.
func (r *GormEventRepository) Get(ctx context.Context, id kernel.UUID) (*event.Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EventDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("event", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
