// Package warehouserepo provides data transfer objects and mapping functions
// for warehouse persistence.
package warehouserepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO represents the database structure for persisting warehouses.
type WarehouseDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Location  string     `gorm:"type:varchar(255);not null"`
	ManagerID *uuid.UUID `gorm:"type:uuid;index"`
	Capacity  int        `gorm:"type:int;not null"`
}

// TableName specifies the database table name for warehouse entities.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(entity *warehouse.Warehouse) WarehouseDTO {
	var managerID *uuid.UUID
	if entity.Manager() != nil {
		raw := entity.Manager().Bytes()
		managerID = &raw
	}

	return WarehouseDTO{
		ID:        entity.ID().Bytes(),
		Name:      entity.Name(),
		Location:  entity.Location(),
		ManagerID: managerID,
		Capacity:  entity.Capacity(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	entity, err := warehouse.NewWarehouse(id, dto.Name, dto.Location, dto.Capacity)
	if err != nil {
		return nil, err
	}

	if dto.ManagerID != nil {
		managerID, idErr := kernel.UUIDFromBytes((*dto.ManagerID)[:])
		if idErr != nil {
			return nil, idErr
		}
		if err = entity.AssignManager(managerID); err != nil {
			return nil, err
		}
	}

	return entity, nil
}
