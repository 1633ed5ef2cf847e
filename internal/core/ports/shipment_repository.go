package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates
// and their owned delivery legs.
type ShipmentRepository interface {
	// Add persists a new shipment. The store enforces tracking-code
	// uniqueness; a colliding code surfaces as ConstraintConflictError so
	// the caller can regenerate and retry.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	// Returns ObjectNotFoundError when the shipment does not exist.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// Delete removes a shipment and cascades to its owned delivery legs.
	// Dependent deliveries are never orphaned.
	Delete(ctx context.Context, id kernel.UUID) error

	// AddDelivery persists a delivery leg owned by a shipment.
	AddDelivery(ctx context.Context, delivery *shipment.Delivery) error

	// GetDeliveries retrieves all delivery legs owned by a shipment.
	GetDeliveries(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.Delivery, error)
}
