package jobs

import (
	"fmt"
	"log/slog"

	"moving/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	moverAssignmentJob *MoverAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignMoverHandler commands.AssignMoverCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		moverAssignmentJob: NewMoverAssignmentJob(assignMoverHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.moverAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start mover assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.moverAssignmentJob.Stop()
}
