package jobs

import (
	"context"
	"log/slog"

	"courierservice/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogReportSchedule runs the report once a minute.
const DefaultBacklogReportSchedule = "0 * * * * *"

// OrderBacklogReportJob periodically logs how many orders wait for a courier,
// are on the way and were delivered.
type OrderBacklogReportJob struct {
	handler  queries.GetOrderBacklogQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBacklogReportJob creates the job. schedule is a six field cron
// expression (with seconds).
func NewOrderBacklogReportJob(
	handler queries.GetOrderBacklogQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OrderBacklogReportJob {
	return &OrderBacklogReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_report_job"),
	}
}

// Start schedules the report. An invalid schedule is returned as an error.
func (j *OrderBacklogReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *OrderBacklogReportJob) Run() {
	ctx := context.Background()

	backlog, err := j.handler.Handle(ctx, queries.NewGetOrderBacklogQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order backlog report failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Order backlog",
		"searching", backlog.Searching,
		"in_transit", backlog.InTransit,
		"delivered", backlog.Delivered,
	)
}

// Stop stops the job and waits for a running report to finish.
func (j *OrderBacklogReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog report job stopped")
}
