package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Note that the task-change write path deliberately uses two separate units
// of work: the order-side write commits first and the contract-side sync runs
// in its own transaction whose failure is logged and swallowed. The two
// checklist copies are eventually consistent, not atomic.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// ContractRepository returns a ContractRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	ContractRepository() ContractRepository

	// PackageRepository returns a PackageRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	PackageRepository() PackageRepository

	// TemplateRepository returns a TemplateRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	TemplateRepository() TemplateRepository
}
