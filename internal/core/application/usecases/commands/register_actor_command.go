package commands

import (
	"errors"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrRegisterActorCommandIsNotConstructed = errors.New(
		"RegisterActorCommand must be created via NewRegisterActorCommand constructor",
	)
	ErrActorNameIsRequired = errors.New("name is required")
)

// RegisterActorCommand represents a request to register a new actor together
// with its role assignment. Registration and role assignment are one atomic
// operation; there is no roleless window.
type RegisterActorCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	name    string
	role    actor.Role

	guard guard.ConstructorGuard
}

// NewRegisterActorCommand creates a command to register a new actor.
// Automatically generates a unique ID for the actor. A RoleUnknown role is
// accepted and resolved to the default role by the aggregate; any other role
// value must be valid.
func NewRegisterActorCommand(name string, role actor.Role) (RegisterActorCommand, error) {
	command := RegisterActorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(kernel.NewUUID()),
		command.setName(name),
		command.setRole(role),
	); err != nil {
		return RegisterActorCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterActorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterActorCommandIsNotConstructed)
}

// ActorID returns the generated ID for the new actor.
func (c RegisterActorCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the actor name from the command.
func (c RegisterActorCommand) Name() string {
	return c.name
}

// Role returns the requested role from the command. May be RoleUnknown when
// the caller did not ask for a specific role.
func (c RegisterActorCommand) Role() actor.Role {
	return c.role
}

func (c *RegisterActorCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actorID = id
	return nil
}

func (c *RegisterActorCommand) setName(name string) error {
	if name == "" {
		return ErrActorNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterActorCommand) setRole(role actor.Role) error {
	if role != actor.RoleUnknown {
		if err := role.Validate(); err != nil {
			return err
		}
	}

	c.role = role
	return nil
}
