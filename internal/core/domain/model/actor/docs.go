// Package actor provides the identity aggregate for the logistics system.
//
// The package includes:
//   - Actor: an authenticated party with a unique identifier and display name
//   - Role: a value object drawn from the fixed set
//     {admin, warehouse_manager, delivery_person, customer}
//
// Key business rules:
//   - Every actor carries exactly one role; registration assigns it atomically
//     inside the constructor (default: customer)
//   - Role changes only happen through the explicit ChangeRole operation
//   - Elevated actors bypass role whitelists in the authorization evaluator
//
// Anonymous parties are represented by a nil *Actor at the authorization
// boundary; the domain never materializes an "anonymous actor" value.
package actor
