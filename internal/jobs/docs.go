// Package jobs provides scheduled background tasks for the courier service.
//
// Jobs are built on github.com/robfig/cron/v3 with second precision
// schedules and log through slog with a "component" attribute.
//
// # Available Jobs
//
//   - OrderBacklogReportJob logs the number of orders per status. It only
//     reads and is scheduled by BACKLOG_REPORT_SCHEDULE; an empty value
//     disables it.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(backlogHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and retried on the next tick. A job that fails
// to start stops the jobs already started.
package jobs
