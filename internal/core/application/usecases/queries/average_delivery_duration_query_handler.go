package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// AverageDeliveryDurationQueryHandler computes the mean creation-to-delivery
// time over SQL. AVG over an empty set yields NULL, which maps onto the
// explicit no-data flag in the response.
type AverageDeliveryDurationQueryHandler struct {
	db *gorm.DB
}

// NewAverageDeliveryDurationQueryHandler creates a handler for duration queries.
func NewAverageDeliveryDurationQueryHandler(db *gorm.DB) AverageDeliveryDurationQueryHandler {
	return AverageDeliveryDurationQueryHandler{db: db}
}

// Handle executes the duration query.
// Considers only shipments delivered within the trailing window. Returns
// HasData=false when none qualify.
func (h AverageDeliveryDurationQueryHandler) Handle(
	ctx context.Context,
	query AverageDeliveryDurationQuery,
) (AverageDeliveryDurationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AverageDeliveryDurationQueryResponse{}, err
	}

	windowStart := time.Now().UTC().AddDate(0, 0, -query.WindowDays())

	var averageSeconds *float64
	err := h.db.WithContext(ctx).Raw(`
		SELECT AVG(EXTRACT(EPOCH FROM (delivered_at - created_at)))
		FROM shipments
		WHERE status = ?
		  AND delivered_at >= ?
	`, shipment.StatusDelivered.String(), windowStart).Scan(&averageSeconds).Error
	if err != nil {
		return AverageDeliveryDurationQueryResponse{}, err
	}

	if averageSeconds == nil {
		return AverageDeliveryDurationQueryResponse{HasData: false}, nil
	}

	return AverageDeliveryDurationQueryResponse{
		HasData: true,
		Average: time.Duration(*averageSeconds * float64(time.Second)),
	}, nil
}
