// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AnalyticsDigestJob - Periodically logs a read-only analytics digest
// (daily creation counts, order status breakdown, average delivery duration)
// so operators can follow throughput without querying the API.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dailyCountsHandler, ordersByStatusHandler, durationHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The digest job is read-only; failures are logged and the next tick retries
// from scratch. Failed job starts stop any already running jobs.
package jobs
