package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order for the acting
// actor. The order number may be supplied by the caller; when absent the
// handler generates one.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actingActorID kernel.UUID
	orderID       kernel.UUID
	number        *order.Number
	itemIDs       []kernel.UUID
	totalCents    int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Automatically generates a unique ID for the order. A non-empty number
// string must match the order number layout; an empty string means
// "generate one for me". Item IDs must be valid and free of duplicates.
func NewCreateOrderCommand(
	actingActorID kernel.UUID,
	number string,
	itemIDs []kernel.UUID,
	totalCents int64,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActingActorID(actingActorID),
		command.setOrderID(kernel.NewUUID()),
		command.setNumber(number),
		command.setItemIDs(itemIDs),
		command.setTotalCents(totalCents),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ActingActorID returns the ID of the customer placing the order.
func (c CreateOrderCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

// OrderID returns the generated ID for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Number returns the caller-supplied order number, or nil when the handler
// should generate one.
func (c CreateOrderCommand) Number() *order.Number {
	return c.number
}

// ItemIDs returns the ordered items' IDs. The returned slice is a copy.
func (c CreateOrderCommand) ItemIDs() []kernel.UUID {
	items := make([]kernel.UUID, len(c.itemIDs))
	copy(items, c.itemIDs)
	return items
}

// TotalCents returns the order total in integer cents.
func (c CreateOrderCommand) TotalCents() int64 {
	return c.totalCents
}

func (c *CreateOrderCommand) setActingActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actingActorID = id
	return nil
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setNumber(number string) error {
	if number == "" {
		return nil
	}

	parsed, err := order.NumberFromString(number)
	if err != nil {
		return err
	}

	c.number = &parsed
	return nil
}

func (c *CreateOrderCommand) setItemIDs(itemIDs []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(itemIDs))
	for _, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return err
		}
		if _, ok := seen[itemID]; ok {
			return errs.NewValueIsInvalidError("itemIDs")
		}
		seen[itemID] = struct{}{}
	}

	c.itemIDs = make([]kernel.UUID, len(itemIDs))
	copy(c.itemIDs, itemIDs)
	return nil
}

func (c *CreateOrderCommand) setTotalCents(totalCents int64) error {
	if totalCents < 0 {
		return errs.NewValueIsInvalidError("totalCents")
	}

	c.totalCents = totalCents
	return nil
}
