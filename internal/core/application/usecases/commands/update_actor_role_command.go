package commands

import (
	"errors"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUpdateActorRoleCommandIsNotConstructed = errors.New(
	"UpdateActorRoleCommand must be created via NewUpdateActorRoleCommand constructor",
)

// UpdateActorRoleCommand represents a request to replace an actor's role.
// Role replacement is the only mutation path for role state.
type UpdateActorRoleCommand struct { //nolint:recvcheck //using for validation
	actingActorID kernel.UUID
	targetActorID kernel.UUID
	role          actor.Role

	guard guard.ConstructorGuard
}

// NewUpdateActorRoleCommand creates a command to replace the target actor's
// role. The role must be a valid role; RoleUnknown is rejected.
func NewUpdateActorRoleCommand(
	actingActorID kernel.UUID,
	targetActorID kernel.UUID,
	role actor.Role,
) (UpdateActorRoleCommand, error) {
	command := UpdateActorRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActingActorID(actingActorID),
		command.setTargetActorID(targetActorID),
		command.setRole(role),
	); err != nil {
		return UpdateActorRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateActorRoleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateActorRoleCommandIsNotConstructed)
}

// ActingActorID returns the ID of the actor performing the role change.
func (c UpdateActorRoleCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

// TargetActorID returns the ID of the actor whose role is replaced.
func (c UpdateActorRoleCommand) TargetActorID() kernel.UUID {
	return c.targetActorID
}

// Role returns the new role from the command.
func (c UpdateActorRoleCommand) Role() actor.Role {
	return c.role
}

func (c *UpdateActorRoleCommand) setActingActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actingActorID = id
	return nil
}

func (c *UpdateActorRoleCommand) setTargetActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.targetActorID = id
	return nil
}

func (c *UpdateActorRoleCommand) setRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
