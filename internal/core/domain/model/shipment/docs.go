// Package shipment provides the shipment aggregate and its lifecycle engine.
//
// The package includes:
//   - Shipment: the aggregate root holding tracking code, route, timestamps,
//     and optional event/delivery-person references
//   - Status: a strictly forward state machine PENDING -> IN_TRANSIT -> DELIVERED
//   - TrackingCode: the unique human-readable shipment identifier
//   - Delivery: delivery legs owned by a shipment (cascade on delete)
//
// Key business rules:
//   - A shipment is created PENDING with a fresh tracking code and a nil
//     delivery timestamp
//   - The delivery timestamp is set if and only if the shipment is DELIVERED,
//     and never precedes the creation timestamp
//   - DELIVERED is terminal; backward transitions are rejected
package shipment
