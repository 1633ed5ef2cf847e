// Package ports defines repository interfaces for the logistics domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
)

// ActorRepository is the identity store contract. It holds actor identity and
// the single role assignment; role reads and writes always travel through the
// whole aggregate so the one-role-per-actor invariant cannot be bypassed.
type ActorRepository interface {
	// Add persists a newly registered actor together with its role assignment.
	Add(ctx context.Context, aggregate *actor.Actor) error

	// Update persists changes to an existing actor, including role changes.
	Update(ctx context.Context, aggregate *actor.Actor) error

	// Get retrieves an actor by its unique identifier.
	// Returns ObjectNotFoundError when the actor does not exist.
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)
}
