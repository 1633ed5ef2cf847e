package shipment

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment or RestoreShipment factory methods.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the aggregate root for a tracked consignment moving from an
// origin to a destination.
//
// Shipment follows these invariants:
//   - Tracking code is unique (store-enforced) and immutable once assigned
//   - Creation timestamp is immutable, set at creation
//   - Delivery timestamp is non-nil if and only if status == DELIVERED,
//     and never precedes the creation timestamp
//   - Status transitions move strictly forward (see Status)
//   - Owned Delivery records are detached only through the aggregate's delete
type Shipment struct {
	id           kernel.UUID
	trackingCode TrackingCode
	status       Status
	createdAt    time.Time
	deliveredAt  *time.Time
	origin       string
	destination  string
	contents     string
	eventID      *kernel.UUID
	assigneeID   *kernel.UUID

	isConstructed bool
}

// NewShipment creates a shipment in PENDING status with a nil delivery
// timestamp. Origin and destination are required; contents is free text and
// may be empty.
func NewShipment(
	id kernel.UUID,
	trackingCode TrackingCode,
	origin string,
	destination string,
	contents string,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        StatusPending,
		contents:      contents,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingCode(trackingCode),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence. All stored values
// are re-validated, including the delivery-timestamp/status invariant, so a
// corrupted row can never round-trip into a valid aggregate.
func RestoreShipment(
	id kernel.UUID,
	trackingCode TrackingCode,
	status Status,
	origin string,
	destination string,
	contents string,
	createdAt time.Time,
	deliveredAt *time.Time,
	eventID *kernel.UUID,
	assigneeID *kernel.UUID,
) (*Shipment, error) {
	s, err := NewShipment(id, trackingCode, origin, destination, contents, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	s.status = status

	if err = s.setDeliveredAt(deliveredAt); err != nil {
		return nil, err
	}

	if eventID != nil {
		if err = s.AttachEvent(*eventID); err != nil {
			return nil, err
		}
	}
	if assigneeID != nil {
		if err = s.AssignDeliveryPerson(*assigneeID); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed through a factory.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingCode returns the shipment's immutable tracking code.
func (s *Shipment) TrackingCode() TrackingCode {
	return s.trackingCode
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt returns the immutable creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// DeliveredAt returns the delivery timestamp, or nil while the shipment has
// not reached DELIVERED.
func (s *Shipment) DeliveredAt() *time.Time {
	return s.deliveredAt
}

// Origin returns the shipment's origin.
func (s *Shipment) Origin() string {
	return s.origin
}

// Destination returns the shipment's destination.
func (s *Shipment) Destination() string {
	return s.destination
}

// Contents returns the free-text description of the shipment's contents.
func (s *Shipment) Contents() string {
	return s.contents
}

// Event returns the linked event's ID, or nil when none is linked.
func (s *Shipment) Event() *kernel.UUID {
	return s.eventID
}

// DeliveryPerson returns the assigned delivery actor's ID, or nil when unassigned.
func (s *Shipment) DeliveryPerson() *kernel.UUID {
	return s.assigneeID
}

// TransitionTo moves the shipment to next, enforcing the lifecycle contract:
//
//   - transitions move strictly forward; DELIVERED is terminal
//   - DELIVERED requires deliveredAt, and deliveredAt must not precede the
//     creation timestamp
//   - supplying deliveredAt for any other target status is invalid
//
// On a transition to a non-DELIVERED status the delivery timestamp is cleared,
// so the timestamp/status invariant holds no matter how the aggregate got here.
func (s *Shipment) TransitionTo(next Status, deliveredAt *time.Time) error {
	newStatus, err := s.status.TransitionTo(next)
	if err != nil {
		return err
	}

	if newStatus == StatusDelivered {
		if deliveredAt == nil {
			return errs.NewInvalidTransitionErrorWithCause(
				s.status.String(), next.String(),
				errs.NewValueIsRequiredError("deliveredAt"),
			)
		}
		if deliveredAt.Before(s.createdAt) {
			return errs.NewInvalidTransitionErrorWithCause(
				s.status.String(), next.String(),
				fmt.Errorf("deliveredAt %s precedes createdAt %s",
					deliveredAt.Format(time.RFC3339), s.createdAt.Format(time.RFC3339)),
			)
		}
	} else if deliveredAt != nil {
		return errs.NewInvalidTransitionErrorWithCause(
			s.status.String(), next.String(),
			fmt.Errorf("deliveredAt is only valid when transitioning to %s", StatusDelivered),
		)
	}

	s.status = newStatus
	if newStatus == StatusDelivered {
		s.deliveredAt = deliveredAt
	} else {
		s.deliveredAt = nil
	}

	return nil
}

// AttachEvent links the shipment to an event. Events are referenced, not
// owned; deleting the shipment never touches the event.
func (s *Shipment) AttachEvent(eventID kernel.UUID) error {
	if err := eventID.Validate(); err != nil {
		return err
	}
	s.eventID = &eventID
	return nil
}

// AssignDeliveryPerson assigns the shipment to a delivery actor.
func (s *Shipment) AssignDeliveryPerson(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	s.assigneeID = &actorID
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingCode(code TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	s.trackingCode = code
	return nil
}

func (s *Shipment) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	s.createdAt = createdAt
	return nil
}

// setDeliveredAt enforces the timestamp/status invariant during restore.
func (s *Shipment) setDeliveredAt(deliveredAt *time.Time) error {
	if s.status == StatusDelivered {
		if deliveredAt == nil {
			return errs.NewValueIsRequiredErrorWithCause(
				"deliveredAt",
				fmt.Errorf("status is %s", StatusDelivered),
			)
		}
		if deliveredAt.Before(s.createdAt) {
			return errs.NewValueIsInvalidErrorWithCause(
				"deliveredAt",
				fmt.Errorf("precedes createdAt %s", s.createdAt.Format(time.RFC3339)),
			)
		}
		s.deliveredAt = deliveredAt
		return nil
	}

	if deliveredAt != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveredAt",
			fmt.Errorf("must be empty while status is %s", s.status),
		)
	}
	s.deliveredAt = nil
	return nil
}
