package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrTransitionShipmentCommandIsNotConstructed = errors.New(
	"TransitionShipmentCommand must be created via NewTransitionShipmentCommand constructor",
)

// TransitionShipmentCommand represents a request to move a shipment to a new
// lifecycle status. A transition to DELIVERED carries the delivery timestamp;
// the aggregate enforces the timestamp/status contract.
type TransitionShipmentCommand struct { //nolint:recvcheck //using for validation
	actingActorID kernel.UUID
	shipmentID    kernel.UUID
	next          shipment.Status
	deliveredAt   *time.Time

	guard guard.ConstructorGuard
}

// NewTransitionShipmentCommand creates a command to transition a shipment.
// The target status must be a valid status value; deliveredAt is required by
// the aggregate only for transitions to DELIVERED.
func NewTransitionShipmentCommand(
	actingActorID kernel.UUID,
	shipmentID kernel.UUID,
	next shipment.Status,
	deliveredAt *time.Time,
) (TransitionShipmentCommand, error) {
	command := TransitionShipmentCommand{
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActingActorID(actingActorID),
		command.setShipmentID(shipmentID),
		command.setNext(next),
	); err != nil {
		return TransitionShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentCommandIsNotConstructed)
}

// ActingActorID returns the ID of the actor performing the transition.
func (c TransitionShipmentCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

// ShipmentID returns the ID of the shipment to transition.
func (c TransitionShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Next returns the target status from the command.
func (c TransitionShipmentCommand) Next() shipment.Status {
	return c.next
}

// DeliveredAt returns the delivery timestamp, or nil when none was supplied.
func (c TransitionShipmentCommand) DeliveredAt() *time.Time {
	return c.deliveredAt
}

func (c *TransitionShipmentCommand) setActingActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actingActorID = id
	return nil
}

func (c *TransitionShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *TransitionShipmentCommand) setNext(next shipment.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}
