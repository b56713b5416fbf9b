package jobs

import (
	"context"
	"log/slog"
	"time"

	"bookstore/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OvertimeCancellationJob sweeps unpaid orders that outlived the payment
// deadline, cancelling them and releasing their reserved stock. Runs every
// ten seconds; expiry is judged against each order's stored placement time.
type OvertimeCancellationJob struct {
	handler commands.CancelOvertimeOrdersCommandHandler
	timeout time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOvertimeCancellationJob creates a sweep job with the given payment
// deadline for unpaid orders.
func NewOvertimeCancellationJob(
	handler commands.CancelOvertimeOrdersCommandHandler,
	timeout time.Duration,
	logger *slog.Logger,
) *OvertimeCancellationJob {
	return &OvertimeCancellationJob{
		handler: handler,
		timeout: timeout,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overtime_cancellation_job"),
	}
}

// Start begins the sweep job to run every ten seconds.
func (j *OvertimeCancellationJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewCancelOvertimeOrdersCommand(j.timeout)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Overtime cancellation job misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Overtime cancellation sweep failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overtime cancellation job started (running every ten seconds)")
	return nil
}

// Stop stops the sweep job.
func (j *OvertimeCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overtime cancellation job stopped")
}
