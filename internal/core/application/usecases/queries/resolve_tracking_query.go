// Package queries contains read-only operations against the store.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows directly over SQL and return read models, bypassing the
// domain aggregates.
package queries

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrResolveTrackingQueryIsNotConstructed = errors.New(
	"ResolveTrackingQuery must be created via NewResolveTrackingQuery constructor",
)

// ResolveTrackingQuery searches shipments by tracking code. The search term
// matches case-insensitively anywhere inside the code, so customers can paste
// a partial code and still find their shipment. Tracking lookup is public; no
// acting actor is required.
type ResolveTrackingQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewResolveTrackingQuery creates a tracking search query.
// The term is trimmed; an empty or whitespace-only term is rejected.
func NewResolveTrackingQuery(term string) (ResolveTrackingQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return ResolveTrackingQuery{}, errs.NewValueIsRequiredError("term")
	}

	return ResolveTrackingQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolveTrackingQuery) Validate() error {
	return q.guard.Validate(ErrResolveTrackingQueryIsNotConstructed)
}

// Term returns the trimmed search term.
func (q ResolveTrackingQuery) Term() string {
	return q.term
}

// ResolveTrackingQueryResponse is the read model for one matched shipment.
type ResolveTrackingQueryResponse struct {
	ID           kernel.UUID
	TrackingCode string
	Status       string
	Origin       string
	Destination  string
	CreatedAt    time.Time
	DeliveredAt  *time.Time
}
