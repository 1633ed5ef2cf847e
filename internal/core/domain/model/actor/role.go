package actor

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role is a fixed category that controls which operations an actor may perform.
// Every actor carries exactly one role at any time.
//
// Role is a value object: it validates itself and provides string
// representations for persistence and display.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin may perform every operation in the system.
	RoleAdmin

	// RoleWarehouseManager manages shipments and warehouses.
	RoleWarehouseManager

	// RoleDeliveryPerson progresses shipments along their delivery route.
	RoleDeliveryPerson

	// RoleCustomer places orders and tracks their own shipments.
	// This is the default role assigned at registration.
	RoleCustomer
)

// DefaultRole is assigned when an actor registers without an explicit role.
const DefaultRole = RoleCustomer

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:          "unknown",
		RoleAdmin:            "admin",
		RoleWarehouseManager: "warehouse_manager",
		RoleDeliveryPerson:   "delivery_person",
		RoleCustomer:         "customer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:            "admin",
		RoleWarehouseManager: "warehouse_manager",
		RoleDeliveryPerson:   "delivery_person",
		RoleCustomer:         "customer",
	}
}

// RoleFromString parses a role from its persisted string form.
// Returns an error for anything outside the fixed role set.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the fixed role set.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted name of the role, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
