package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateWarehouseCommandIsNotConstructed = errors.New(
	"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
)

// CreateWarehouseCommand represents a request to register a new warehouse,
// optionally assigned to a managing actor.
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	actingActorID kernel.UUID
	warehouseID   kernel.UUID
	name          string
	location      string
	capacity      int
	managerID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand creates a command to register a warehouse.
// Automatically generates a unique ID for the warehouse. Name and location
// are required; capacity bounds are enforced by the aggregate.
func NewCreateWarehouseCommand(
	actingActorID kernel.UUID,
	name string,
	location string,
	capacity int,
	managerID *kernel.UUID,
) (CreateWarehouseCommand, error) {
	command := CreateWarehouseCommand{
		capacity: capacity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActingActorID(actingActorID),
		command.setWarehouseID(kernel.NewUUID()),
		command.setName(name),
		command.setLocation(location),
		command.setManagerID(managerID),
	); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

// ActingActorID returns the ID of the actor creating the warehouse.
func (c CreateWarehouseCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

// WarehouseID returns the generated ID for the new warehouse.
func (c CreateWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Name returns the warehouse name from the command.
func (c CreateWarehouseCommand) Name() string {
	return c.name
}

// Location returns the warehouse location from the command.
func (c CreateWarehouseCommand) Location() string {
	return c.location
}

// Capacity returns the warehouse capacity from the command.
func (c CreateWarehouseCommand) Capacity() int {
	return c.capacity
}

// ManagerID returns the managing actor's ID, or nil when none was supplied.
func (c CreateWarehouseCommand) ManagerID() *kernel.UUID {
	return c.managerID
}

func (c *CreateWarehouseCommand) setActingActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actingActorID = id
	return nil
}

func (c *CreateWarehouseCommand) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.warehouseID = id
	return nil
}

func (c *CreateWarehouseCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateWarehouseCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}

	c.location = location
	return nil
}

func (c *CreateWarehouseCommand) setManagerID(managerID *kernel.UUID) error {
	if managerID == nil {
		return nil
	}
	if err := managerID.Validate(); err != nil {
		return err
	}

	c.managerID = managerID
	return nil
}
