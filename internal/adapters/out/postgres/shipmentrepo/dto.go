// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. Delivery legs are owned rows with a cascading
// foreign key, so deleting a shipment removes its legs at the database level
// as well as through the repository.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The tracking code carries a unique index; the database is the
// hard uniqueness guarantee behind generated codes.
type ShipmentDTO struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	TrackingCode string        `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status       string        `gorm:"type:varchar(16);not null"`
	Origin       string        `gorm:"type:varchar(255);not null"`
	Destination  string        `gorm:"type:varchar(255);not null"`
	Contents     string        `gorm:"type:text"`
	CreatedAt    time.Time     `gorm:"not null"`
	DeliveredAt  *time.Time    `gorm:""`
	EventID      *uuid.UUID    `gorm:"type:uuid;index"`
	AssigneeID   *uuid.UUID    `gorm:"type:uuid;index"`
	Deliveries   []DeliveryDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// DeliveryDTO represents the database structure for persisting delivery legs.
type DeliveryDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssignedPersonID *uuid.UUID `gorm:"type:uuid;index"`
	Status           string     `gorm:"type:varchar(16);not null"`
	Location         string     `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for delivery leg entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a shipment domain aggregate to its database representation.
// Delivery legs are persisted through AddDelivery, not through the aggregate row.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var eventID, assigneeID *uuid.UUID
	if aggregate.Event() != nil {
		raw := aggregate.Event().Bytes()
		eventID = &raw
	}
	if aggregate.DeliveryPerson() != nil {
		raw := aggregate.DeliveryPerson().Bytes()
		assigneeID = &raw
	}

	return ShipmentDTO{
		ID:           aggregate.ID().Bytes(),
		TrackingCode: aggregate.TrackingCode().String(),
		Status:       aggregate.Status().String(),
		Origin:       aggregate.Origin(),
		Destination:  aggregate.Destination(),
		Contents:     aggregate.Contents(),
		CreatedAt:    aggregate.CreatedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		EventID:      eventID,
		AssigneeID:   assigneeID,
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := shipment.TrackingCodeFromString(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var eventID, assigneeID *kernel.UUID
	if dto.EventID != nil {
		parsed, idErr := kernel.UUIDFromBytes((*dto.EventID)[:])
		if idErr != nil {
			return nil, idErr
		}
		eventID = &parsed
	}
	if dto.AssigneeID != nil {
		parsed, idErr := kernel.UUIDFromBytes((*dto.AssigneeID)[:])
		if idErr != nil {
			return nil, idErr
		}
		assigneeID = &parsed
	}

	return shipment.RestoreShipment(
		id, code, status,
		dto.Origin, dto.Destination, dto.Contents,
		dto.CreatedAt, dto.DeliveredAt,
		eventID, assigneeID,
	)
}

// deliveryFromDomain converts a delivery leg to its database representation.
func deliveryFromDomain(leg *shipment.Delivery) DeliveryDTO {
	var assignedPersonID *uuid.UUID
	if leg.AssignedPerson() != nil {
		raw := leg.AssignedPerson().Bytes()
		assignedPersonID = &raw
	}

	return DeliveryDTO{
		ID:               leg.ID().Bytes(),
		ShipmentID:       leg.ShipmentID().Bytes(),
		AssignedPersonID: assignedPersonID,
		Status:           leg.Status().String(),
		Location:         leg.Location(),
	}
}

// deliveryToDomain converts a database DTO to a delivery leg entity.
func deliveryToDomain(dto DeliveryDTO) (*shipment.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.DeliveryStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var assignedPersonID *kernel.UUID
	if dto.AssignedPersonID != nil {
		parsed, idErr := kernel.UUIDFromBytes((*dto.AssignedPersonID)[:])
		if idErr != nil {
			return nil, idErr
		}
		assignedPersonID = &parsed
	}

	return shipment.RestoreDelivery(id, shipmentID, assignedPersonID, status, dto.Location)
}
