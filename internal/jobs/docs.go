// Package jobs provides scheduled background tasks for the delivery system.
//
// Jobs run on github.com/robfig/cron/v3 and call the same command handlers
// as the HTTP API, so they share its transactions and locking.
//
// # Available Jobs
//
// RiderDispatchJob assigns the oldest paid, not yet collected parcel to an
// active idle rider, preferring riders from the sender's district and then
// the least recently assigned. Each run repeats until the queue is empty or
// no rider is available.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(dispatchHandler, cfg.DispatchSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule comes from DISPATCH_SCHEDULE. Five- and six-field cron
// expressions and descriptors like "@every 30s" are accepted. An empty value
// disables the job. Overlapping runs are skipped.
//
// # Error Handling
//
// An empty queue and a lack of riders end the run quietly. Any other error is
// logged and ends the run; the next tick starts over.
package jobs
