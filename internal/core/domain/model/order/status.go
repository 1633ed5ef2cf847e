package order

import (
	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Like the shipment
// engine, transitions move strictly forward:
//
//	PENDING ──> SHIPPED ──> DELIVERED
//	    └───────────────────────┘
//	      (skipping ahead allowed)
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at creation.
	StatusPending

	// StatusShipped indicates the order's shipment has been dispatched.
	StatusShipped

	// StatusDelivered indicates the order has been delivered.
	// This is a terminal state.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusShipped:   "SHIPPED",
		StatusDelivered: "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "PENDING",
		StatusShipped:   "SHIPPED",
		StatusDelivered: "DELIVERED",
	}
}

// StatusFromString parses a status from its persisted string form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// Validate checks if the Status value is one of PENDING, SHIPPED, DELIVERED.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the persisted name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// TransitionTo validates a strictly forward move from the current status to
// next. Returns (next, nil) on success, or (0, InvalidTransitionError).
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, errs.NewInvalidTransitionErrorWithCause(s.String(), next.String(), err)
	}
	if err := next.Validate(); err != nil {
		return 0, errs.NewInvalidTransitionErrorWithCause(s.String(), next.String(), err)
	}

	if s == StatusDelivered || next <= s {
		return 0, errs.NewInvalidTransitionError(s.String(), next.String())
	}

	return next, nil
}
