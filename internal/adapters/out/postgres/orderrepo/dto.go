// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Item references live in a join table so the duplicate-free
// item set of the aggregate maps onto a composite primary key.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index mirroring the tracking-code scheme.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number     string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status     string         `gorm:"type:varchar(16);not null"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index"`
	TotalCents int64          `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"not null"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one item reference of an order. The composite
// primary key makes duplicate references impossible at the storage level.
type OrderItemDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for order item references.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, itemID := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID: orderID,
			ItemID:  itemID.Bytes(),
		})
	}

	return OrderDTO{
		ID:         orderID,
		Number:     aggregate.Number().String(),
		Status:     aggregate.Status().String(),
		CustomerID: aggregate.Customer().Bytes(),
		TotalCents: aggregate.TotalCents(),
		CreatedAt:  aggregate.CreatedAt(),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	itemIDs := make([]kernel.UUID, 0, len(dto.Items))
	for _, item := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(item.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		itemIDs = append(itemIDs, itemID)
	}

	return order.RestoreOrder(id, number, status, customerID, itemIDs, dto.TotalCents, dto.CreatedAt)
}
