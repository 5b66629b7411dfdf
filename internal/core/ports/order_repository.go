// Package ports defines repository interfaces for the storefront domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Virtual placeholder orders never pass through this repository; they exist
// only in memory on the read side.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// including its checklist, contract link and stored status.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllUnlinked retrieves orders without an explicit contract link.
	// Used by the auto-linking job to find candidates for email matching.
	GetAllUnlinked(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order by its unique identifier.
	// Deleting a missing order is an error.
	Delete(ctx context.Context, id kernel.UUID) error
}
