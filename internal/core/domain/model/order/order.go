package order

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a customer order.
//
// Order follows these invariants:
//   - Order number is unique (store-enforced) and immutable once assigned
//   - The item reference set contains no duplicates
//   - Total price is non-negative, held in integer cents
//   - Creation timestamp is immutable, set at creation
//   - Status transitions follow the forward-only machine in Status
type Order struct {
	id          kernel.UUID
	number      Number
	status      Status
	customerID  kernel.UUID
	itemIDs     []kernel.UUID
	totalCents  int64
	createdAt   time.Time

	isConstructed bool
}

// NewOrder creates an order in PENDING status for the given customer.
// itemIDs must not contain duplicates; totalCents must not be negative.
func NewOrder(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	itemIDs []kernel.UUID,
	totalCents int64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setItems(itemIDs),
		o.setTotalCents(totalCents),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, re-validating all
// stored values.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	status Status,
	customerID kernel.UUID,
	itemIDs []kernel.UUID,
	totalCents int64,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, number, customerID, itemIDs, totalCents, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the order's immutable order number.
func (o *Order) Number() Number {
	return o.number
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Customer returns the owning customer's identifier.
func (o *Order) Customer() kernel.UUID {
	return o.customerID
}

// Items returns the order's item references. The returned slice is a copy.
func (o *Order) Items() []kernel.UUID {
	items := make([]kernel.UUID, len(o.itemIDs))
	copy(items, o.itemIDs)
	return items
}

// TotalCents returns the order's total price in integer cents.
func (o *Order) TotalCents() int64 {
	return o.totalCents
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TransitionTo moves the order to next, enforcing forward-only movement.
func (o *Order) TransitionTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AddItem appends an item reference. Duplicate entries are rejected.
func (o *Order) AddItem(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	for _, existing := range o.itemIDs {
		if existing.IsEqual(itemID) {
			return errs.NewValueIsInvalidErrorWithCause(
				"itemID", fmt.Errorf("%s is already referenced by the order", itemID),
			)
		}
	}
	o.itemIDs = append(o.itemIDs, itemID)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(itemIDs []kernel.UUID) error {
	for _, itemID := range itemIDs {
		if err := o.AddItem(itemID); err != nil {
			return err
		}
	}
	return nil
}

func (o *Order) setTotalCents(totalCents int64) error {
	if totalCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalCents", fmt.Errorf("%d is negative", totalCents),
		)
	}
	o.totalCents = totalCents
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
