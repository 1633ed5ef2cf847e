// Package eventrepo provides data transfer objects and mapping functions for
// event persistence. Events are shared references; shipments point at them
// but never own them.
package eventrepo

import (
	"time"

	"logistics/internal/core/domain/model/event"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting events.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Date        time.Time `gorm:"not null"`
	Location    string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
}

// TableName specifies the database table name for event entities.
func (EventDTO) TableName() string {
	return "events"
}

func fromDomain(entity *event.Event) EventDTO {
	return EventDTO{
		ID:          entity.ID().Bytes(),
		Name:        entity.Name(),
		Date:        entity.Date(),
		Location:    entity.Location(),
		Description: entity.Description(),
	}
}

func toDomain(dto EventDTO) (*event.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return event.NewEvent(id, dto.Name, dto.Date, dto.Location, dto.Description)
}
