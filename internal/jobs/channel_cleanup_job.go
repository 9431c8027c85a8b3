package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Defaults: every minute, channels idle for five minutes.
const (
	DefaultChannelCleanupSchedule = "0 * * * * *"
	DefaultChannelIdleTimeout     = 5 * time.Minute
)

// ChannelPruner forgets broadcast channels without subscribers.
type ChannelPruner interface {
	Prune(idle time.Duration) int
}

// ChannelCleanupJob periodically drops idle in-memory broadcast channels so
// the hub does not grow with every entity ever subscribed to.
type ChannelCleanupJob struct {
	pruner   ChannelPruner
	schedule string
	idle     time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewChannelCleanupJob uses a six-field cron schedule (with seconds).
func NewChannelCleanupJob(pruner ChannelPruner, schedule string, idle time.Duration, logger *slog.Logger) *ChannelCleanupJob {
	return &ChannelCleanupJob{
		pruner:   pruner,
		schedule: schedule,
		idle:     idle,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "channel_cleanup_job"),
	}
}

// Start registers the schedule and starts the cron runner.
func (j *ChannelCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.Run)
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Channel cleanup job started",
		"schedule", j.schedule, "idle", j.idle.String())
	return nil
}

// Run performs one cleanup pass.
func (j *ChannelCleanupJob) Run() {
	if pruned := j.pruner.Prune(j.idle); pruned > 0 {
		j.logger.DebugContext(context.Background(), "Pruned idle broadcast channels", "count", pruned)
	}
}

// Stop waits for a running pass to finish.
func (j *ChannelCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Channel cleanup job stopped")
}
