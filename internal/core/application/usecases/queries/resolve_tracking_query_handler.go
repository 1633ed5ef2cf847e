package queries

import (
	"context"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// likeEscaper neutralizes LIKE/ILIKE metacharacters so a search term matches
// them literally instead of acting as wildcards.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ResolveTrackingQueryHandler searches shipments by tracking code directly
// over SQL. ILIKE gives the case-insensitive substring match; results are
// ordered by tracking code so partial-term searches return a stable list.
type ResolveTrackingQueryHandler struct {
	db *gorm.DB
}

// NewResolveTrackingQueryHandler creates a handler for tracking searches.
func NewResolveTrackingQueryHandler(db *gorm.DB) ResolveTrackingQueryHandler {
	return ResolveTrackingQueryHandler{db: db}
}

// Handle executes the tracking search.
// Returns every shipment whose tracking code contains the term, or an empty
// slice when nothing matches.
func (h ResolveTrackingQueryHandler) Handle(
	ctx context.Context,
	query ResolveTrackingQuery,
) ([]ResolveTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	matches := make([]ResolveTrackingQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			status,
			origin,
			destination,
			created_at,
			delivered_at
		FROM shipments
		WHERE tracking_code ILIKE '%' || ? || '%'
		ORDER BY tracking_code
	`, likeEscaper.Replace(query.Term())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var match ResolveTrackingQueryResponse
		var id uuid.UUID
		var deliveredAt *time.Time

		err = rows.Scan(
			&id,
			&match.TrackingCode,
			&match.Status,
			&match.Origin,
			&match.Destination,
			&match.CreatedAt,
			&deliveredAt,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		match.ID = shipmentID
		match.DeliveredAt = deliveredAt
		matches = append(matches, match)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}
