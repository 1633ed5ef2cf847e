package queries

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDailyCountsQueryIsNotConstructed = errors.New(
	"DailyCountsQuery must be created via NewDailyCountsQuery constructor",
)

// CountKind selects which records a daily-counts query aggregates.
type CountKind string

const (
	// CountShipments aggregates shipment creations per day.
	CountShipments CountKind = "shipments"

	// CountOrders aggregates order creations per day.
	CountOrders CountKind = "orders"
)

// Validate checks that the kind is one of the fixed set.
func (k CountKind) Validate() error {
	if k != CountShipments && k != CountOrders {
		return errs.NewValueIsInvalidError("kind")
	}
	return nil
}

// Window bounds for trailing-window analytics queries.
const (
	minWindowDays = 1
	maxWindowDays = 365
)

// DailyCountsQuery asks for per-day creation counts over a trailing window.
// Days without records are reported with an explicit zero, so a chart drawn
// from the response has no gaps.
type DailyCountsQuery struct {
	kind       CountKind
	windowDays int

	guard guard.ConstructorGuard
}

// NewDailyCountsQuery creates a daily-counts query for the given kind over
// the trailing windowDays days, today included.
func NewDailyCountsQuery(kind CountKind, windowDays int) (DailyCountsQuery, error) {
	if err := kind.Validate(); err != nil {
		return DailyCountsQuery{}, err
	}
	if windowDays < minWindowDays || windowDays > maxWindowDays {
		return DailyCountsQuery{}, errs.NewValueIsOutOfRangeError(
			"windowDays", windowDays, minWindowDays, maxWindowDays,
		)
	}

	return DailyCountsQuery{
		kind:       kind,
		windowDays: windowDays,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q DailyCountsQuery) Validate() error {
	return q.guard.Validate(ErrDailyCountsQueryIsNotConstructed)
}

// Kind returns the record kind the query aggregates.
func (q DailyCountsQuery) Kind() CountKind {
	return q.kind
}

// WindowDays returns the trailing window length in days.
func (q DailyCountsQuery) WindowDays() int {
	return q.windowDays
}

// DailyCountsQueryResponse is the read model for one day of the window.
// Responses are returned oldest-first, one entry per day, zeros included.
type DailyCountsQueryResponse struct {
	Date  time.Time
	Count int64
}
