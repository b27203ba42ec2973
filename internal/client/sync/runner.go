package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Runner periodically runs SyncAll in the background.
// Failures are only logged: the data stays queued for the next tick.
type Runner struct {
	service   Service
	scheduler *gocron.Scheduler
	logger    *slog.Logger
	interval  time.Duration
}

// NewRunner creates a runner that syncs every interval.
func NewRunner(service Service, interval time.Duration, logger *slog.Logger) (*Runner, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("sync interval must be positive, got %s", interval)
	}
	return &Runner{
		service:   service,
		scheduler: gocron.NewScheduler(time.UTC),
		logger:    logger,
		interval:  interval,
	}, nil
}

// Start schedules the job and returns immediately. The first run happens at once.
// ctx is passed to every run; cancelling it makes runs fail fast until Stop.
func (r *Runner) Start(ctx context.Context) error {
	// SingletonMode: следующий запуск не начнётся, пока не завершён предыдущий
	_, err := r.scheduler.Every(r.interval).SingletonMode().Do(r.run, ctx)
	if err != nil {
		return fmt.Errorf("failed to schedule sync job: %w", err)
	}

	r.scheduler.StartAsync()
	r.logger.Info("Background sync started", "interval", r.interval)
	return nil
}

// Stop terminates the schedule and waits for a running sync to finish.
func (r *Runner) Stop() {
	r.scheduler.Stop()
	r.logger.Info("Background sync stopped")
}

func (r *Runner) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	result := r.service.SyncAll(ctx)
	if !result.OK() {
		r.logger.Warn("Background sync failed, will retry", "error", result.Err())
	}
}
