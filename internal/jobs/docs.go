// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order-management screen.
//
// # Available Jobs
//
// 1. ContractLinkJob - Runs every minute to link unlinked orders to contracts
// by matching normalized customer emails
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(linkContractsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A run that finds no unlinked orders is a successful no-op. Failed runs are
// logged and retried on the next tick; linking is idempotent, so a crashed
// run leaves no partial state worse than not having run at all.
package jobs
