package ports

import (
	"context"

	"logistics/internal/core/domain/model/event"
	"logistics/internal/core/domain/model/kernel"
)

// EventRepository defines the persistence contract for events.
type EventRepository interface {
	// Add persists a new event.
	Add(ctx context.Context, entity *event.Event) error

	// Get retrieves an event by its unique identifier.
	// Returns ObjectNotFoundError when the event does not exist.
	Get(ctx context.Context, id kernel.UUID) (*event.Event, error)
}
