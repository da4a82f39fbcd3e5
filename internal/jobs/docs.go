// Package jobs provides scheduled background tasks for the listing catalog.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the property service.
//
// # Available Jobs
//
// 1. ListingArchivalJob - Periodically archives approved listings whose property was marked Sold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(archiveSoldListingsHandler, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The archival job uses a six-field cron expression with seconds precision.
// The default schedule "0 0 * * * *" runs the sweep at the top of every hour;
// deployments override it through configuration when a different cadence is
// needed.
//
// # Error Handling
//
// - The archival sweep runs in a single transaction; a failed run changes nothing and is retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
