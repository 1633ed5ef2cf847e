package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateEventCommandIsNotConstructed = errors.New(
	"CreateEventCommand must be created via NewCreateEventCommand constructor",
)

// CreateEventCommand represents a request to create an event that shipments
// may later reference.
type CreateEventCommand struct { //nolint:recvcheck //using for validation
	actingActorID kernel.UUID
	eventID       kernel.UUID
	name          string
	date          time.Time
	location      string
	description   string

	guard guard.ConstructorGuard
}

// NewCreateEventCommand creates a command to create a new event.
// Automatically generates a unique ID for the event. Name, date, and
// location are required; description is optional free text.
func NewCreateEventCommand(
	actingActorID kernel.UUID,
	name string,
	date time.Time,
	location string,
	description string,
) (CreateEventCommand, error) {
	command := CreateEventCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActingActorID(actingActorID),
		command.setEventID(kernel.NewUUID()),
		command.setName(name),
		command.setDate(date),
		command.setLocation(location),
	); err != nil {
		return CreateEventCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEventCommand) Validate() error {
	return c.guard.Validate(ErrCreateEventCommandIsNotConstructed)
}

// ActingActorID returns the ID of the actor creating the event.
func (c CreateEventCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

// EventID returns the generated ID for the new event.
func (c CreateEventCommand) EventID() kernel.UUID {
	return c.eventID
}

// Name returns the event name from the command.
func (c CreateEventCommand) Name() string {
	return c.name
}

// Date returns the event date from the command.
func (c CreateEventCommand) Date() time.Time {
	return c.date
}

// Location returns the event location from the command.
func (c CreateEventCommand) Location() string {
	return c.location
}

// Description returns the optional description from the command.
func (c CreateEventCommand) Description() string {
	return c.description
}

func (c *CreateEventCommand) setActingActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actingActorID = id
	return nil
}

func (c *CreateEventCommand) setEventID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.eventID = id
	return nil
}

func (c *CreateEventCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateEventCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	c.date = date
	return nil
}

func (c *CreateEventCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}

	c.location = location
	return nil
}
