package jobs

import (
	"context"
	"errors"
	"log/slog"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// maxDispatchesPerRun bounds one run so a long queue cannot hold the
// scheduler slot forever.
const maxDispatchesPerRun = 100

// Dispatcher assigns the oldest paid parcel that is waiting for a rider.
type Dispatcher interface {
	Handle(ctx context.Context, cmd commands.DispatchRiderCommand) (*parcel.Parcel, error)
}

// RiderDispatchJob assigns waiting parcels to available riders on a schedule.
// A run keeps dispatching until the queue is empty or no rider is left.
type RiderDispatchJob struct {
	handler  Dispatcher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRiderDispatchJob accepts standard five-field cron expressions, an
// optional leading seconds field and descriptors such as "@every 30s".
func NewRiderDispatchJob(handler Dispatcher, schedule string, logger *slog.Logger) *RiderDispatchJob {
	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	return &RiderDispatchJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "rider_dispatch_job"),
	}
}

// Start registers the run and starts the scheduler.
func (j *RiderDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rider dispatch job started", "schedule", j.schedule)
	return nil
}

// RunOnce dispatches parcels until there is nothing left to do and reports
// how many were assigned.
func (j *RiderDispatchJob) RunOnce(ctx context.Context) int {
	dispatched := 0
	for dispatched < maxDispatchesPerRun {
		cmd, err := commands.NewDispatchRiderCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Rider dispatch job failed", "error", err)
			break
		}

		p, err := j.handler.Handle(ctx, cmd)
		if errors.Is(err, commands.ErrNoParcelAwaitingRider) || errors.Is(err, services.ErrNoAvailableRider) {
			break
		}
		if err != nil {
			j.logger.ErrorContext(ctx, "Rider dispatch job failed", "error", err)
			break
		}

		dispatched++
		j.logger.InfoContext(ctx, "Parcel dispatched",
			"trackingNumber", p.TrackingNumber(),
			"riderEmail", p.Rider().Email.String(),
		)
	}
	return dispatched
}

// Stop stops the scheduler and waits for a running dispatch to finish.
func (j *RiderDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rider dispatch job stopped")
}
