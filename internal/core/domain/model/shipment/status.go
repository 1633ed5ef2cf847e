package shipment

import (
	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with strictly forward transitions:
//
//	PENDING ──> IN_TRANSIT ──> DELIVERED
//	    └──────────────────────────┘
//	      (skipping ahead allowed)
//
// DELIVERED is terminal; no transition leaves it and no transition moves
// backward.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at creation.
	StatusPending

	// StatusInTransit indicates the shipment has left its origin.
	StatusInTransit

	// StatusDelivered indicates the shipment reached its destination.
	// This is a terminal state with no further transitions allowed.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "PENDING",
		StatusInTransit: "IN_TRANSIT",
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

// Validate checks if the Status value is one of PENDING, IN_TRANSIT, DELIVERED.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the persisted name of the status, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

// TransitionTo validates a move from the current status to next.
//
// Valid transitions move strictly forward: PENDING -> IN_TRANSIT,
// IN_TRANSIT -> DELIVERED, and PENDING -> DELIVERED (skipping ahead).
// Staying in place, moving backward, or leaving DELIVERED is rejected.
//
// Returns (next, nil) on a valid transition, or (0, InvalidTransitionError)
// identifying the offending pair.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, errs.NewInvalidTransitionErrorWithCause(s.String(), next.String(), err)
	}
	if err := next.Validate(); err != nil {
		return 0, errs.NewInvalidTransitionErrorWithCause(s.String(), next.String(), err)
	}

	if s.IsTerminal() || next <= s {
		return 0, errs.NewInvalidTransitionError(s.String(), next.String())
	}

	return next, nil
}
