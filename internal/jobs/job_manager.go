package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	analyticsDigestJob *AnalyticsDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	dailyCountsHandler queries.DailyCountsQueryHandler,
	ordersByStatusHandler queries.OrdersByStatusQueryHandler,
	durationHandler queries.AverageDeliveryDurationQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		analyticsDigestJob: NewAnalyticsDigestJob(
			dailyCountsHandler, ordersByStatusHandler, durationHandler, logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.analyticsDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start analytics digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.analyticsDigestJob.Stop()
}
