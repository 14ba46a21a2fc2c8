// Package jobs provides scheduled background tasks for the moving service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. MoverAssignmentJob - Runs every second to assign the oldest pending booking to a free mover crew
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignMoverHandler, logger)
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
// The assignment job uses the cron expression "* * * * * *" which means it
// runs every second. This frequency keeps the wait between booking a move
// and seeing a crew assigned short without a dedicated queue.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no pending moves, no free movers)
// - Failed job starts will stop any already running jobs
package jobs
