package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// digestSchedule runs the digest at the top of every hour.
const digestSchedule = "0 * * * *"

// digestWindowDays is the trailing window the digest reports over.
const digestWindowDays = 7

// AnalyticsDigestJob periodically logs a read-only analytics digest built
// from the query handlers: shipments and orders created per day, the order
// status breakdown, and the average delivery duration.
type AnalyticsDigestJob struct {
	dailyCountsHandler    queries.DailyCountsQueryHandler
	ordersByStatusHandler queries.OrdersByStatusQueryHandler
	durationHandler       queries.AverageDeliveryDurationQueryHandler
	cron                  *cron.Cron
	logger                *slog.Logger
}

// NewAnalyticsDigestJob creates a new analytics digest job.
func NewAnalyticsDigestJob(
	dailyCountsHandler queries.DailyCountsQueryHandler,
	ordersByStatusHandler queries.OrdersByStatusQueryHandler,
	durationHandler queries.AverageDeliveryDurationQueryHandler,
	logger *slog.Logger,
) *AnalyticsDigestJob {
	return &AnalyticsDigestJob{
		dailyCountsHandler:    dailyCountsHandler,
		ordersByStatusHandler: ordersByStatusHandler,
		durationHandler:       durationHandler,
		cron:                  cron.New(),
		logger:                logger.With("component", "analytics_digest_job"),
	}
}

// Start begins the analytics digest job on its hourly schedule.
func (j *AnalyticsDigestJob) Start() error {
	_, err := j.cron.AddFunc(digestSchedule, func() {
		j.runDigest(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Analytics digest job started (running hourly)")
	return nil
}

// Stop stops the analytics digest job.
func (j *AnalyticsDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Analytics digest job stopped")
}

// runDigest executes the three analytics queries and logs their results.
// Each section fails independently; a broken query must not silence the rest.
func (j *AnalyticsDigestJob) runDigest(ctx context.Context) {
	j.logShipmentCounts(ctx)
	j.logOrderBreakdown(ctx)
	j.logDeliveryDuration(ctx)
}

func (j *AnalyticsDigestJob) logShipmentCounts(ctx context.Context) {
	query, err := queries.NewDailyCountsQuery(queries.CountShipments, digestWindowDays)
	if err != nil {
		j.logger.ErrorContext(ctx, "Analytics digest failed to build daily counts query", "error", err)
		return
	}

	counts, err := j.dailyCountsHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Analytics digest failed to load daily shipment counts", "error", err)
		return
	}

	var total int64
	for _, day := range counts {
		total += day.Count
	}
	j.logger.InfoContext(ctx, "Shipments created over trailing window",
		"windowDays", digestWindowDays, "total", total)
}

func (j *AnalyticsDigestJob) logOrderBreakdown(ctx context.Context) {
	breakdown, err := j.ordersByStatusHandler.Handle(ctx, queries.NewOrdersByStatusQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Analytics digest failed to load order breakdown", "error", err)
		return
	}

	for _, entry := range breakdown {
		j.logger.InfoContext(ctx, "Orders by status", "status", entry.Status, "count", entry.Count)
	}
}

func (j *AnalyticsDigestJob) logDeliveryDuration(ctx context.Context) {
	query, err := queries.NewAverageDeliveryDurationQuery(digestWindowDays)
	if err != nil {
		j.logger.ErrorContext(ctx, "Analytics digest failed to build duration query", "error", err)
		return
	}

	result, err := j.durationHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Analytics digest failed to load delivery duration", "error", err)
		return
	}

	if !result.HasData {
		j.logger.InfoContext(ctx, "No shipments delivered in trailing window",
			"windowDays", digestWindowDays)
		return
	}

	j.logger.InfoContext(ctx, "Average delivery duration over trailing window",
		"windowDays", digestWindowDays, "average", result.Average.String())
}
