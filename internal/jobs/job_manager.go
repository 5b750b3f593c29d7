package jobs

import (
	"fmt"
	"log/slog"

	"courierservice/internal/core/application/usecases/queries"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []Job
	started []Job
	logger  *slog.Logger
}

// NewJobManager creates a job manager. The backlog report is only scheduled
// when backlogSchedule is not empty.
func NewJobManager(
	backlogHandler queries.GetOrderBacklogQueryHandler,
	backlogSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}
	if backlogSchedule != "" {
		jm.jobs = append(jm.jobs, NewOrderBacklogReportJob(backlogHandler, backlogSchedule, logger))
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.StopAll()
			return fmt.Errorf("failed to start job %T: %w", job, err)
		}
		jm.started = append(jm.started, job)
	}

	if len(jm.jobs) == 0 {
		jm.logger.Info("No scheduled jobs configured")
	}
	return nil
}

// StopAll stops all started jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
