// Package event provides the Event entity: a scheduled happening that
// shipments may reference. Events are shared references, never owned, so
// deleting a shipment leaves its event untouched.
package event

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through the NewEvent factory method.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent")

// Event is a scheduled happening with a time and a place.
type Event struct {
	id          kernel.UUID
	name        string
	date        time.Time
	location    string
	description string

	isConstructed bool
}

// NewEvent creates an event. Name, date, and location are required;
// description is optional free text.
func NewEvent(id kernel.UUID, name string, date time.Time, location, description string) (*Event, error) {
	e := &Event{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setName(name),
		e.setDate(date),
		e.setLocation(location),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID { return e.id }

// Name returns the event's name.
func (e *Event) Name() string { return e.name }

// Date returns when the event takes place.
func (e *Event) Date() time.Time { return e.date }

// Location returns where the event takes place.
func (e *Event) Location() string { return e.location }

// Description returns the optional free-text description.
func (e *Event) Description() string { return e.description }

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	e.name = name
	return nil
}

func (e *Event) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	e.date = date
	return nil
}

func (e *Event) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	e.location = location
	return nil
}
