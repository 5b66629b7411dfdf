package ports

import (
	"context"

	"storefront/internal/core/domain/model/contract"
	"storefront/internal/core/domain/model/kernel"
)

// ContractRepository defines the persistence contract for contract aggregates.
type ContractRepository interface {
	// Add persists a new contract aggregate to storage.
	Add(ctx context.Context, aggregate *contract.Contract) error

	// Update persists changes to an existing contract aggregate,
	// including its checklist copy.
	Update(ctx context.Context, aggregate *contract.Contract) error

	// Get retrieves a contract aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error)

	// GetAll retrieves every contract. The result feeds the in-memory
	// ContractIndex used for order resolution.
	GetAll(ctx context.Context) ([]*contract.Contract, error)
}
