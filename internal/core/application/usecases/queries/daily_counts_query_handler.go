package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DailyCountsQueryHandler aggregates per-day creation counts directly over
// SQL. The database groups existing rows by day; the handler zero-fills the
// missing days so the response always spans the whole window, oldest first.
type DailyCountsQueryHandler struct {
	db *gorm.DB
}

// NewDailyCountsQueryHandler creates a handler for daily-count queries.
func NewDailyCountsQueryHandler(db *gorm.DB) DailyCountsQueryHandler {
	return DailyCountsQueryHandler{db: db}
}

// Handle executes the daily-counts query.
// Returns exactly windowDays entries ordered oldest-first; days without
// records carry an explicit zero count.
func (h DailyCountsQueryHandler) Handle(
	ctx context.Context,
	query DailyCountsQuery,
) ([]DailyCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	windowStart := today.AddDate(0, 0, -(query.WindowDays() - 1))

	// The kind is a validated enum, never caller text, so interpolating the
	// table name is safe.
	var table string
	switch query.Kind() {
	case CountOrders:
		table = "orders"
	case CountShipments:
		table = "shipments"
	}

	// Bucketing is pinned to UTC; a bare DATE() would follow the server
	// session timezone and shift records near midnight into adjacent days.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			DATE(created_at AT TIME ZONE 'UTC') AS day,
			COUNT(*) AS total
		FROM `+table+`
		WHERE created_at >= ?
		GROUP BY day
		ORDER BY day
	`, windowStart).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[time.Time]int64, query.WindowDays())
	for rows.Next() {
		var day time.Time
		var total int64

		if err = rows.Scan(&day, &total); err != nil {
			return nil, err
		}
		counts[day.UTC().Truncate(24*time.Hour)] = total
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	response := make([]DailyCountsQueryResponse, 0, query.WindowDays())
	for day := windowStart; !day.After(today); day = day.AddDate(0, 0, 1) {
		response = append(response, DailyCountsQueryResponse{
			Date:  day,
			Count: counts[day],
		})
	}

	return response, nil
}
