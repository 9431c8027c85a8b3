// Package jobs provides scheduled background tasks for the logistics service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use six fields, the first one being seconds.
//
// # Available Jobs
//
// 1. ChannelCleanupJob - Runs every minute to forget in-memory broadcast channels
// that have had no subscribers for the configured idle timeout
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewChannelCleanupJob(hub, jobs.DefaultChannelCleanupSchedule, jobs.DefaultChannelIdleTimeout, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed start stops every job already running.
package jobs
