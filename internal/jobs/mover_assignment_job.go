package jobs

import (
	"context"
	"errors"
	"log/slog"

	"moving/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MoverAssignmentJob manages the scheduled assignment of movers to moves.
// Runs every second to match pending bookings with free mover crews.
type MoverAssignmentJob struct {
	handler commands.AssignMoverCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMoverAssignmentJob creates a new job for assigning movers.
// Uses AssignMoverCommandHandler to process mover assignments every second.
func NewMoverAssignmentJob(handler commands.AssignMoverCommandHandler, logger *slog.Logger) *MoverAssignmentJob {
	return &MoverAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "mover_assignment_job"),
	}
}

// Start begins the mover assignment job to run every second.
func (j *MoverAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignMoverCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoMoveFound) && !errors.Is(err, commands.ErrNoFreeMoversFound) {
				j.logger.ErrorContext(ctx, "Mover assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Mover assignment job started (running every second)")
	return nil
}

// Stop stops the mover assignment job.
func (j *MoverAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Mover assignment job stopped")
}
