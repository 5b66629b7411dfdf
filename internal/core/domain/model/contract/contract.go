package contract

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/workflow"
)

// ErrContractIsNotConstructed is returned when a Contract instance was not
// created through NewContract or RestoreContract.
var ErrContractIsNotConstructed = errors.New("Contract must be created via NewContract or RestoreContract")

// Contract represents a longer-lived client agreement. A contract carries the
// purchasable store items that restrict which of a linked order's line items
// are displayed, and its own copy of the fulfillment checklist.
//
// Contract invariants:
//   - Must have a valid unique identifier
//   - Owns its workflow field exclusively; the task-change write path keeps
//     it eventually consistent with the order's copy by title-matched done
//     flags, never by sharing references
//
// Resolution from an order happens either by the order's explicit contractID
// or by normalized client email equality (services.ContractIndex).
type Contract struct {
	// id is the unique identifier for the contract
	id kernel.UUID

	// clientEmail identifies the client for email-based order linking
	clientEmail string

	// storeItems are the purchasable products covered by the contract
	storeItems []kernel.LineItem

	// workflow is the contract-owned checklist copy
	workflow []workflow.Category

	// isConstructed ensures the contract was created via a constructor
	isConstructed bool
}

// NewContract creates a new Contract with validation. The id must be valid;
// client email, store items and workflow may all be empty.
func NewContract(
	id kernel.UUID,
	clientEmail string,
	storeItems []kernel.LineItem,
	wf []workflow.Category,
) (*Contract, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	items := make([]kernel.LineItem, len(storeItems))
	copy(items, storeItems)

	return &Contract{
		id:            id,
		clientEmail:   clientEmail,
		storeItems:    items,
		workflow:      workflow.Clone(wf),
		isConstructed: true,
	}, nil
}

// RestoreContract reconstructs a contract from persistence.
// It applies the same validation as NewContract.
func RestoreContract(
	id kernel.UUID,
	clientEmail string,
	storeItems []kernel.LineItem,
	wf []workflow.Category,
) (*Contract, error) {
	return NewContract(id, clientEmail, storeItems, wf)
}

// Validate ensures the Contract instance was properly constructed.
func (c *Contract) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContractIsNotConstructed
	}
	return nil
}

// IsEqual compares two contracts by their unique identifiers.
func (c *Contract) IsEqual(other *Contract) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the contract's unique identifier.
func (c *Contract) ID() kernel.UUID {
	return c.id
}

// ClientEmail returns the client's email address as stored.
// Use kernel.NormalizeEmail before comparing.
func (c *Contract) ClientEmail() string {
	return c.clientEmail
}

// StoreItems returns a copy of the purchasable products covered by the contract.
func (c *Contract) StoreItems() []kernel.LineItem {
	items := make([]kernel.LineItem, len(c.storeItems))
	copy(items, c.storeItems)
	return items
}

// Workflow returns a deep copy of the contract-owned checklist.
func (c *Contract) Workflow() []workflow.Category {
	return workflow.Clone(c.workflow)
}

// SetWorkflow replaces the contract-owned checklist with a deep copy of the
// given categories. Used by the task-change write path after merging the
// order's done flags.
func (c *Contract) SetWorkflow(wf []workflow.Category) {
	c.workflow = workflow.Clone(wf)
}
