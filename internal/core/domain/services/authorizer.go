package services

import (
	"logistics/internal/core/domain/model/actor"
	"logistics/internal/pkg/errs"
)

// Policy declares which roles may perform a named operation. Each call site
// constructs its own policy value and passes it to the shared evaluator, so
// authorization decisions stay local and auditable per operation.
//
// A policy is either a role whitelist (NewPolicy, at least one role by
// signature) or the "any authenticated actor" sentinel (AnyAuthenticated).
type Policy struct {
	operation        string
	allowedRoles     []actor.Role
	anyAuthenticated bool
}

// NewPolicy creates a whitelist policy for the named operation. The signature
// requires at least one role, so an empty whitelist cannot be constructed.
func NewPolicy(operation string, first actor.Role, rest ...actor.Role) Policy {
	return Policy{
		operation:    operation,
		allowedRoles: append([]actor.Role{first}, rest...),
	}
}

// AnyAuthenticated creates a policy permitting every authenticated actor,
// regardless of role. Used for list and detail views.
func AnyAuthenticated(operation string) Policy {
	return Policy{
		operation:        operation,
		anyAuthenticated: true,
	}
}

// Operation returns the name of the operation this policy gates.
func (p Policy) Operation() string {
	return p.operation
}

// AllowedRoles returns a copy of the policy's role whitelist.
// Empty for the any-authenticated sentinel.
func (p Policy) AllowedRoles() []actor.Role {
	roles := make([]actor.Role, len(p.allowedRoles))
	copy(roles, p.allowedRoles)
	return roles
}

// Authorizer is the authorization evaluator: a pure predicate over an
// (actor, policy) pair. It holds no state and performs no I/O; callers load
// the actor from the identity store and translate a denial into their own
// redirect or error response.
//
// Permit when the actor is authenticated AND (the actor is elevated OR the
// policy admits any authenticated actor OR the actor's role is whitelisted).
// Deny otherwise, including for anonymous actors (nil) and actors whose role
// is missing or invalid.
type Authorizer struct{}

// NewAuthorizer creates a new Authorizer instance.
func NewAuthorizer() Authorizer {
	return Authorizer{}
}

// Authorize returns nil when the actor may perform the policy's operation,
// or a PermissionDeniedError naming the operation and the actor's role.
func (Authorizer) Authorize(a *actor.Actor, policy Policy) error {
	if a == nil || a.Validate() != nil {
		return errs.NewPermissionDeniedError(policy.operation, "anonymous")
	}

	role := a.Role()
	if role.Validate() != nil {
		return errs.NewPermissionDeniedError(policy.operation, role.String())
	}

	if a.IsElevated() || policy.anyAuthenticated {
		return nil
	}

	for _, allowed := range policy.allowedRoles {
		if role == allowed {
			return nil
		}
	}

	return errs.NewPermissionDeniedError(policy.operation, role.String())
}
