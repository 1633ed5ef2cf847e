package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrOrdersByStatusQueryIsNotConstructed = errors.New(
	"OrdersByStatusQuery must be created via NewOrdersByStatusQuery constructor",
)

// OrdersByStatusQuery asks for the number of orders in each lifecycle status.
// Statuses with no orders are omitted rather than reported as zero.
type OrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewOrdersByStatusQuery creates an orders-by-status query.
// This is a parameterless query over all orders.
func NewOrdersByStatusQuery() OrdersByStatusQuery {
	return OrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q OrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrOrdersByStatusQueryIsNotConstructed)
}

// OrdersByStatusQueryResponse is the read model for one occupied status.
// Responses are ordered by status label, ascending.
type OrdersByStatusQueryResponse struct {
	Status string
	Count  int64
}
