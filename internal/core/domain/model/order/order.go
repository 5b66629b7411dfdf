package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/workflow"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through one of the constructor functions. This ensures all orders are
// properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder, RestoreOrder or NewVirtualOrder")

// dueDateOffset is how long after creation an order is due for delivery.
const dueDateOffset = 15 * 24 * time.Hour

// Order represents a customer purchase tracked through fulfillment. It is the
// aggregate root that owns the order-side checklist: the workflow field on the
// order document belongs to the order alone, and the task-change write path
// keeps the linked contract's copy eventually consistent by copying done flags
// across matching task titles.
//
// Order invariants:
//   - Must have a valid unique identifier
//   - Displayed items are always a subset of raw items (the filter lives in
//     the services package; the aggregate stores the raw list)
//   - Virtual orders are in-memory placeholders synthesized from a contract
//     and are never persisted
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName is the display name of the buying customer
	customerName string

	// customerEmail links the order to a contract when contractID is absent
	customerEmail string

	// createdAt is the server-side creation timestamp (zero when unknown)
	createdAt time.Time

	// items are the raw purchased product references
	items []kernel.LineItem

	// contractID is the explicitly linked contract (nil if unlinked)
	contractID *kernel.UUID

	// workflow is the order-owned checklist (may be empty; the contract's
	// checklist is the fallback for display)
	workflow []workflow.Category

	// status is the manually stored status; listing derives its own
	status Status

	// virtual marks placeholder rows synthesized from a contract
	virtual bool

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. Orders normally enter the
// system through the external checkout flow; this constructor exists for
// that boundary and for tests.
//
// The id must be valid. Customer name, email and items may be empty: orders
// without a resolvable contract or without items are valid states handled by
// the listing rules.
func NewOrder(
	id kernel.UUID,
	customerName string,
	customerEmail string,
	createdAt time.Time,
	items []kernel.LineItem,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerName:  customerName,
		customerEmail: customerEmail,
		createdAt:     createdAt,
		items:         cloneItems(items),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence, including its stored
// checklist, stored status and contract link.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	customerEmail string,
	createdAt time.Time,
	items []kernel.LineItem,
	contractID *kernel.UUID,
	wf []workflow.Category,
	status Status,
) (*Order, error) {
	o, err := NewOrder(id, customerName, customerEmail, createdAt, items)
	if err != nil {
		return nil, err
	}

	if contractID != nil {
		if err = o.LinkContract(*contractID); err != nil {
			return nil, err
		}
	}
	o.workflow = workflow.Clone(wf)
	o.status = status
	return o, nil
}

// NewVirtualOrder creates an in-memory placeholder row for a contract that has
// purchasable items but no matching order yet. Virtual orders are shown in the
// listing and their checklist edits flow to the contract only; the task-change
// write path never writes a virtual order to the order collection.
//
// The id is the backing contract's id.
func NewVirtualOrder(
	contractID kernel.UUID,
	customerName string,
	customerEmail string,
	items []kernel.LineItem,
	wf []workflow.Category,
) (*Order, error) {
	o, err := NewOrder(contractID, customerName, customerEmail, time.Time{}, items)
	if err != nil {
		return nil, err
	}

	o.contractID = &contractID
	o.workflow = workflow.Clone(wf)
	o.virtual = true
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct and should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the buying customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the buying customer's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// CreatedAt returns the order's creation timestamp (zero when unknown).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DueDate returns the delivery due date, 15 days after creation.
// Returns the zero time when the creation timestamp is unknown.
func (o *Order) DueDate() time.Time {
	if o.createdAt.IsZero() {
		return time.Time{}
	}
	return o.createdAt.Add(dueDateOffset)
}

// Items returns a copy of the raw purchased items.
func (o *Order) Items() []kernel.LineItem {
	return cloneItems(o.items)
}

// ContractID returns the explicitly linked contract's ID.
// Returns nil if no contract is linked.
func (o *Order) ContractID() *kernel.UUID {
	return o.contractID
}

// Workflow returns a deep copy of the order-owned checklist.
// An empty result means the contract's checklist is the display fallback.
func (o *Order) Workflow() []workflow.Category {
	return workflow.Clone(o.workflow)
}

// StoredStatus returns the manually stored status. Unknown means no manual
// status was ever written; the listing always derives its own value.
func (o *Order) StoredStatus() Status {
	return o.status
}

// IsVirtual reports whether this order is a placeholder synthesized from a
// contract rather than a persisted record.
func (o *Order) IsVirtual() bool {
	return o.virtual
}

// LinkContract links the order to a contract by id.
// Used by the auto-linking job once an email match is found.
func (o *Order) LinkContract(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return err
	}

	o.contractID = &contractID
	return nil
}

// SetWorkflow replaces the order-owned checklist with a deep copy of the
// given categories. Callers are responsible for producing the new checklist
// through the pure workflow transformations (Toggle, EnsureDeliveryTasks,
// Template.Instantiate).
func (o *Order) SetWorkflow(wf []workflow.Category) {
	o.workflow = workflow.Clone(wf)
}

// SetStoredStatus overwrites the manually stored status.
func (o *Order) SetStoredStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

func cloneItems(items []kernel.LineItem) []kernel.LineItem {
	cloned := make([]kernel.LineItem, len(items))
	copy(cloned, items)
	return cloned
}
