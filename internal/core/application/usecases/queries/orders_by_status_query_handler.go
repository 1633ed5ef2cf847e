package queries

import (
	"context"

	"gorm.io/gorm"
)

// OrdersByStatusQueryHandler counts orders per lifecycle status directly
// over SQL. Grouping only ever yields occupied statuses, which matches the
// contract: zero counts are omitted, not reported.
type OrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewOrdersByStatusQueryHandler creates a handler for status breakdowns.
func NewOrdersByStatusQueryHandler(db *gorm.DB) OrdersByStatusQueryHandler {
	return OrdersByStatusQueryHandler{db: db}
}

// Handle executes the status breakdown query.
// Returns one entry per occupied status, ordered by status label ascending.
func (h OrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query OrdersByStatusQuery,
) ([]OrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	breakdown := make([]OrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) AS total
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry OrdersByStatusQueryResponse

		if err = rows.Scan(&entry.Status, &entry.Count); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return breakdown, nil
}
