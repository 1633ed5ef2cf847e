// Package order provides the customer order aggregate.
//
// The package includes:
//   - Order: the aggregate root holding number, customer, item references,
//     and total price
//   - Number: the unique human-readable order identifier, auto-generated
//     when not client-supplied
//   - Status: a forward-only state machine PENDING -> SHIPPED -> DELIVERED
//
// The order lifecycle mirrors the shipment engine's pattern but is tracked
// independently; an order's status is never derived from shipment state.
package order
