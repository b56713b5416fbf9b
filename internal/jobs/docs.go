// Package jobs provides scheduled background tasks for the order core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OvertimeCancellationJob - Runs every ten seconds to cancel unpaid orders
// older than the payment deadline, returning their reserved stock to the store.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cancelOvertimeHandler, timeout, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep cancels each expired order in its own transaction; per-order
// failures are joined and logged without aborting the rest of the sweep.
// An order paid between the scan and its cancellation loses the
// compare-and-set status write and is skipped.
package jobs
