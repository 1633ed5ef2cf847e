package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouses.
type WarehouseRepository interface {
	// Add persists a new warehouse.
	Add(ctx context.Context, entity *warehouse.Warehouse) error

	// Get retrieves a warehouse by its unique identifier.
	// Returns ObjectNotFoundError when the warehouse does not exist.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)
}
