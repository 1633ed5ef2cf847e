package queries

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAverageDeliveryDurationQueryIsNotConstructed = errors.New(
	"AverageDeliveryDurationQuery must be created via NewAverageDeliveryDurationQuery constructor",
)

// AverageDeliveryDurationQuery asks for the mean creation-to-delivery time of
// shipments delivered inside a trailing window. When no shipment was
// delivered in the window the response says so explicitly; the average is
// never silently reported as zero.
type AverageDeliveryDurationQuery struct {
	windowDays int

	guard guard.ConstructorGuard
}

// NewAverageDeliveryDurationQuery creates a duration query over the trailing
// windowDays days.
func NewAverageDeliveryDurationQuery(windowDays int) (AverageDeliveryDurationQuery, error) {
	if windowDays < minWindowDays || windowDays > maxWindowDays {
		return AverageDeliveryDurationQuery{}, errs.NewValueIsOutOfRangeError(
			"windowDays", windowDays, minWindowDays, maxWindowDays,
		)
	}

	return AverageDeliveryDurationQuery{
		windowDays: windowDays,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AverageDeliveryDurationQuery) Validate() error {
	return q.guard.Validate(ErrAverageDeliveryDurationQueryIsNotConstructed)
}

// WindowDays returns the trailing window length in days.
func (q AverageDeliveryDurationQuery) WindowDays() int {
	return q.windowDays
}

// AverageDeliveryDurationQueryResponse is the read model for the duration
// query. HasData distinguishes "average is zero" from "nothing was delivered
// in the window"; Average is meaningful only when HasData is true.
type AverageDeliveryDurationQueryResponse struct {
	HasData bool
	Average time.Duration
}
