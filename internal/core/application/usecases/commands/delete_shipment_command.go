package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand represents a request to remove a shipment together
// with its owned delivery legs.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	actingActorID kernel.UUID
	shipmentID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to delete a shipment.
func NewDeleteShipmentCommand(actingActorID, shipmentID kernel.UUID) (DeleteShipmentCommand, error) {
	command := DeleteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActingActorID(actingActorID),
		command.setShipmentID(shipmentID),
	); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ActingActorID returns the ID of the actor performing the deletion.
func (c DeleteShipmentCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

// ShipmentID returns the ID of the shipment to delete.
func (c DeleteShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *DeleteShipmentCommand) setActingActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actingActorID = id
	return nil
}

func (c *DeleteShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}
