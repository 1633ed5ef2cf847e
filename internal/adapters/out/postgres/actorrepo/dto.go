// Package actorrepo provides data transfer objects and mapping functions for
// actor persistence. The actor row carries the single role assignment; role
// reads and writes always travel with the whole row, so the one-role-per-actor
// invariant cannot be bypassed at the storage level.
package actorrepo

import (
	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ActorDTO represents the database structure for persisting actor aggregates.
type ActorDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Role     string    `gorm:"type:varchar(32);not null"`
	Elevated bool      `gorm:"not null;default:false"`
}

// TableName specifies the database table name for actor entities.
func (ActorDTO) TableName() string {
	return "actors"
}

// fromDomain converts an actor domain aggregate to its database representation.
func fromDomain(aggregate *actor.Actor) ActorDTO {
	return ActorDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Role:     aggregate.Role().String(),
		Elevated: aggregate.IsElevated(),
	}
}

// toDomain converts a database DTO to an actor domain aggregate.
func toDomain(dto ActorDTO) (*actor.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := actor.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return actor.RestoreActor(id, dto.Name, role, dto.Elevated)
}
