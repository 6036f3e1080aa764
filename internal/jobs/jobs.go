package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"hospitaldesk/internal/service"
)

// Runner owns the scheduled background jobs.
type Runner struct {
	cron *cron.Cron
	log  *logrus.Logger
}

// Start registers the nightly jobs and kicks off the scheduler. The counter
// resync runs at 00:05 so drift in the Redis counters never survives to the
// morning shift.
func Start(log *logrus.Logger, overview *service.OverviewService) (*Runner, error) {
	c := cron.New()

	_, err := c.AddFunc("5 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := overview.SyncFromDatabase(ctx); err != nil {
			log.Warnf("Nightly counter resync failed: %+v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info("Background jobs started")

	return &Runner{cron: c, log: log}, nil
}

// Stop halts the scheduler and waits for any running job to finish.
func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
	r.log.Info("Background jobs stopped")
}
