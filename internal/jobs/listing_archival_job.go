package jobs

import (
	"context"
	"log/slog"

	"propertyservice/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultArchivalSchedule runs the sweep at the top of every hour.
const DefaultArchivalSchedule = "0 0 * * * *"

// ListingArchivalJob manages the scheduled retirement of sold listings.
// Each run archives every approved listing whose property was marked Sold,
// keeping the public catalog free of stale entries.
type ListingArchivalJob struct {
	handler  commands.ArchiveSoldListingsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewListingArchivalJob creates a new job for archiving sold listings.
// The schedule is a six-field cron expression with seconds precision;
// an empty schedule falls back to DefaultArchivalSchedule.
func NewListingArchivalJob(
	handler commands.ArchiveSoldListingsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ListingArchivalJob {
	if schedule == "" {
		schedule = DefaultArchivalSchedule
	}

	return &ListingArchivalJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "listing_archival_job"),
	}
}

// Start begins the archival sweep on its configured schedule.
func (j *ListingArchivalJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewArchiveSoldListingsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Listing archival job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Listing archival job started", "schedule", j.schedule)
	return nil
}

// Stop stops the archival job.
func (j *ListingArchivalJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Listing archival job stopped")
}
