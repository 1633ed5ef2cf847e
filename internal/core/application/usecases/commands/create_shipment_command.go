package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment.
// The tracking code is generated by the handler, not supplied by the caller.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	actingActorID kernel.UUID
	shipmentID    kernel.UUID
	origin        string
	destination   string
	contents      string
	eventID       *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Automatically generates a unique ID for the shipment. Origin and
// destination are required; contents is free text; eventID optionally links
// the shipment to an event.
func NewCreateShipmentCommand(
	actingActorID kernel.UUID,
	origin string,
	destination string,
	contents string,
	eventID *kernel.UUID,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		contents: contents,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActingActorID(actingActorID),
		command.setShipmentID(kernel.NewUUID()),
		command.setOrigin(origin),
		command.setDestination(destination),
		command.setEventID(eventID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ActingActorID returns the ID of the actor creating the shipment.
func (c CreateShipmentCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

// ShipmentID returns the generated ID for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Origin returns the shipment origin from the command.
func (c CreateShipmentCommand) Origin() string {
	return c.origin
}

// Destination returns the shipment destination from the command.
func (c CreateShipmentCommand) Destination() string {
	return c.destination
}

// Contents returns the free-text contents description from the command.
func (c CreateShipmentCommand) Contents() string {
	return c.contents
}

// EventID returns the linked event's ID, or nil when none was supplied.
func (c CreateShipmentCommand) EventID() *kernel.UUID {
	return c.eventID
}

func (c *CreateShipmentCommand) setActingActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actingActorID = id
	return nil
}

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}

	c.origin = origin
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.destination = destination
	return nil
}

func (c *CreateShipmentCommand) setEventID(eventID *kernel.UUID) error {
	if eventID == nil {
		return nil
	}
	if err := eventID.Validate(); err != nil {
		return err
	}

	c.eventID = eventID
	return nil
}
