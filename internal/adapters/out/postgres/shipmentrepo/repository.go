package shipmentrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// isUniqueViolation reports whether err is a uniqueness constraint breach,
// either as a raw driver error or as GORM's translated form.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Add saves a new shipment to the database.
// A tracking-code collision surfaces as ConstraintConflictError so the caller
// can regenerate the code and retry. The INSERT runs in a nested transaction,
// which GORM maps to a savepoint when the repository is bound to an open
// unit-of-work transaction; a unique violation then rolls back to the
// savepoint instead of aborting the enclosing transaction, so the retry can
// still commit.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return errs.NewConstraintConflictErrorWithCause(
				"trackingCode", aggregate.TrackingCode().String(), err,
			)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
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

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a shipment and all delivery legs it owns. The explicit leg
// delete keeps the cascade visible in the repository even when the schema's
// ON DELETE CASCADE would cover it.
func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", id.Bytes()).
		Delete(&DeliveryDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", id.String())
	}

	return nil
}

// AddDelivery saves a delivery leg owned by a shipment.
func (r *GormShipmentRepository) AddDelivery(ctx context.Context, delivery *shipment.Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}

	dto := deliveryFromDomain(delivery)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetDeliveries retrieves all delivery legs owned by a shipment.
func (r *GormShipmentRepository) GetDeliveries(
	ctx context.Context, shipmentID kernel.UUID,
) ([]*shipment.Delivery, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	legs := make([]*shipment.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		leg, err := deliveryToDomain(dto)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}

	return legs, nil
}
