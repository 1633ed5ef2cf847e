// Package services provides stateless domain services for the logistics
// system: logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - Authorizer: the role-based authorization evaluator, deciding
//     permit/deny for an (actor, operation policy) pair
//   - Policy: a per-operation role whitelist value, constructed at each
//     call site rather than looked up in a global ACL table
package services
