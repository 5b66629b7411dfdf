package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/workflow"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderWorkflowQueryIsNotConstructed = errors.New(
	"GetOrderWorkflowQuery must be created via NewGetOrderWorkflowQuery constructor",
)

// GetOrderWorkflowQuery retrieves the editable checklist of a single row:
// the order's stored checklist (or an empty one) synthesized against the
// row's current display items, so every displayed product has a delivery
// task. For virtual rows the identifier is the backing contract's id.
//
// Example:
//
//	query, _ := NewGetOrderWorkflowQuery(orderID, false)
//	handler := NewGetOrderWorkflowQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load checklist: %w", err)
//	}
//	for _, category := range resp.Categories {
//	    fmt.Printf("%s: %d tasks\n", category.Name, len(category.Tasks))
//	}
type GetOrderWorkflowQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	virtual bool

	guard guard.ConstructorGuard
}

// NewGetOrderWorkflowQuery creates a query for a row's editable checklist.
func NewGetOrderWorkflowQuery(orderID kernel.UUID, virtual bool) (GetOrderWorkflowQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderWorkflowQuery{}, err
	}

	return GetOrderWorkflowQuery{
		orderID: orderID,
		virtual: virtual,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderWorkflowQueryIsNotConstructed if validation fails.
func (q GetOrderWorkflowQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderWorkflowQueryIsNotConstructed)
}

// OrderID returns the identifier of the targeted row.
func (q GetOrderWorkflowQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Virtual reports whether the targeted row is a contract-backed placeholder.
func (q GetOrderWorkflowQuery) Virtual() bool {
	return q.virtual
}

// GetOrderWorkflowQueryResponse carries the synthesized checklist the UI
// renders and edits.
type GetOrderWorkflowQueryResponse struct {
	OrderID    kernel.UUID
	Virtual    bool
	Categories []workflow.Category
}
