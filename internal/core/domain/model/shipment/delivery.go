package shipment

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory methods.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// DeliveryStatus is the lifecycle state of a delivery leg.
type DeliveryStatus int

const (
	// DeliveryStatusUnknown represents an invalid or undefined status.
	DeliveryStatusUnknown DeliveryStatus = iota

	// DeliveryInProgress is the initial status of a delivery leg.
	DeliveryInProgress

	// DeliveryCompleted indicates the leg has been completed.
	DeliveryCompleted
)

// String implements fmt.Stringer.
func (d DeliveryStatus) String() string {
	switch d {
	case DeliveryInProgress:
		return "IN_PROGRESS"
	case DeliveryCompleted:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

// Validate checks if the DeliveryStatus value is valid.
func (d DeliveryStatus) Validate() error {
	if d != DeliveryInProgress && d != DeliveryCompleted {
		return errs.NewValueIsInvalidError("deliveryStatus")
	}
	return nil
}

// DeliveryStatusFromString parses a delivery status from its persisted form.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	switch s {
	case "IN_PROGRESS":
		return DeliveryInProgress, nil
	case "COMPLETED":
		return DeliveryCompleted, nil
	default:
		return DeliveryStatusUnknown, errs.NewValueIsInvalidError("deliveryStatus")
	}
}

// Delivery is a delivery leg owned by a Shipment. Deleting the shipment
// cascades to its deliveries; they are never left orphaned.
type Delivery struct {
	id               kernel.UUID
	shipmentID       kernel.UUID
	assignedPersonID *kernel.UUID
	status           DeliveryStatus
	location         string

	isConstructed bool
}

// NewDelivery creates a delivery leg in IN_PROGRESS status for the given shipment.
func NewDelivery(id, shipmentID kernel.UUID, location string) (*Delivery, error) {
	d := &Delivery{
		status:        DeliveryInProgress,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setShipmentID(shipmentID),
		d.setLocation(location),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery leg from persistence.
func RestoreDelivery(
	id, shipmentID kernel.UUID,
	assignedPersonID *kernel.UUID,
	status DeliveryStatus,
	location string,
) (*Delivery, error) {
	d, err := NewDelivery(id, shipmentID, location)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	d.status = status

	if assignedPersonID != nil {
		if err = d.Assign(*assignedPersonID); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed through a factory.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// ShipmentID returns the owning shipment's identifier.
func (d *Delivery) ShipmentID() kernel.UUID {
	return d.shipmentID
}

// AssignedPerson returns the assigned actor's ID, or nil when unassigned.
func (d *Delivery) AssignedPerson() *kernel.UUID {
	return d.assignedPersonID
}

// Status returns the delivery leg's status.
func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// Location returns the delivery location.
func (d *Delivery) Location() string {
	return d.location
}

// Assign assigns the delivery leg to an actor.
func (d *Delivery) Assign(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	d.assignedPersonID = &actorID
	return nil
}

// Complete marks the delivery leg as completed.
func (d *Delivery) Complete() error {
	if d.status == DeliveryCompleted {
		return errs.NewInvalidTransitionError(d.status.String(), DeliveryCompleted.String())
	}
	d.status = DeliveryCompleted
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.shipmentID = id
	return nil
}

func (d *Delivery) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	d.location = location
	return nil
}
