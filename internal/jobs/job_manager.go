package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	riderDispatchJob *RiderDispatchJob
}

// NewJobManager creates the job manager. An empty dispatchSchedule disables
// automatic dispatch; parcels are then assigned by admins only.
func NewJobManager(dispatcher Dispatcher, dispatchSchedule string, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if dispatchSchedule != "" {
		jm.riderDispatchJob = NewRiderDispatchJob(dispatcher, dispatchSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.riderDispatchJob == nil {
		return nil
	}
	if err := jm.riderDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start rider dispatch job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.riderDispatchJob != nil {
		jm.riderDispatchJob.Stop()
	}
}

// Enabled reports whether any job is scheduled.
func (jm *JobManager) Enabled() bool {
	return jm.riderDispatchJob != nil
}
