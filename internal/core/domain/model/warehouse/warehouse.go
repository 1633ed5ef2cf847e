// Package warehouse provides the Warehouse entity: a named storage location
// with a bounded capacity and an optional managing actor.
package warehouse

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse instance was not
// created through the NewWarehouse factory method.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse")

// Capacity bounds keep obviously bogus input out of the store.
const (
	minCapacity = 1
	maxCapacity = 1_000_000
)

// Warehouse is a storage location managed by an optional actor.
type Warehouse struct {
	id        kernel.UUID
	name      string
	location  string
	managerID *kernel.UUID
	capacity  int

	isConstructed bool
}

// NewWarehouse creates a warehouse. Name and location are required;
// capacity must lie within [1, 1000000].
func NewWarehouse(id kernel.UUID, name, location string, capacity int) (*Warehouse, error) {
	w := &Warehouse{isConstructed: true}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setLocation(location),
		w.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate ensures the Warehouse instance was properly constructed.
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID { return w.id }

// Name returns the warehouse's name.
func (w *Warehouse) Name() string { return w.name }

// Location returns the warehouse's location.
func (w *Warehouse) Location() string { return w.location }

// Manager returns the managing actor's ID, or nil when unmanaged.
func (w *Warehouse) Manager() *kernel.UUID { return w.managerID }

// Capacity returns the warehouse's capacity.
func (w *Warehouse) Capacity() int { return w.capacity }

// AssignManager sets the managing actor.
func (w *Warehouse) AssignManager(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	w.managerID = &actorID
	return nil
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}

func (w *Warehouse) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	w.location = location
	return nil
}

func (w *Warehouse) setCapacity(capacity int) error {
	if capacity < minCapacity || capacity > maxCapacity {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, minCapacity, maxCapacity)
	}
	w.capacity = capacity
	return nil
}
