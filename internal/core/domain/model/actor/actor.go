package actor

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor or RestoreActor factory methods.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or RestoreActor")

// Actor is an authenticated party that initiates operations against the system.
//
// Actor follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Carries exactly one role at any time; registration assigns the role
//     atomically inside the constructor (there is no roleless window)
//   - Role changes happen only through the explicit ChangeRole operation
//   - Elevated actors bypass role checks in the authorization evaluator
//
// Anonymous (unauthenticated) parties are represented by a nil *Actor at the
// evaluation boundary, never by a zero-value Actor.
type Actor struct {
	id       kernel.UUID
	name     string
	role     Role
	elevated bool

	isConstructed bool
}

// NewActor registers a new actor. When role is RoleUnknown the DefaultRole is
// assigned, mirroring registration flows that do not ask for a role. Creating
// an actor always creates its role assignment; the two are inseparable.
func NewActor(id kernel.UUID, name string, role Role) (*Actor, error) {
	a := &Actor{isConstructed: true}

	if role == RoleUnknown {
		role = DefaultRole
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreActor reconstructs an actor from persistence, including its
// elevated flag. All stored values are re-validated.
func RestoreActor(id kernel.UUID, name string, role Role, elevated bool) (*Actor, error) {
	a, err := NewActor(id, name, role)
	if err != nil {
		return nil, err
	}

	a.elevated = elevated
	return a, nil
}

// Validate ensures the Actor instance was properly constructed through a factory.
func (a *Actor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// IsEqual compares two actors by their unique identifiers.
func (a *Actor) IsEqual(other *Actor) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() kernel.UUID {
	return a.id
}

// Name returns the actor's display name.
func (a *Actor) Name() string {
	return a.name
}

// Role returns the actor's current role.
func (a *Actor) Role() Role {
	return a.role
}

// IsElevated reports whether the actor has superuser status.
func (a *Actor) IsElevated() bool {
	return a.elevated
}

// ChangeRole replaces the actor's role. This is the only mutation path for
// role state; it never happens as a side effect of another operation.
func (a *Actor) ChangeRole(role Role) error {
	return a.setRole(role)
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
