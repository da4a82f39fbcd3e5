package jobs

import (
	"fmt"
	"log/slog"

	"propertyservice/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	listingArchivalJob *ListingArchivalJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	archiveSoldListingsHandler commands.ArchiveSoldListingsCommandHandler,
	archivalSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		listingArchivalJob: NewListingArchivalJob(archiveSoldListingsHandler, archivalSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.listingArchivalJob.Start(); err != nil {
		return fmt.Errorf("failed to start listing archival job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.listingArchivalJob.Stop()
}
