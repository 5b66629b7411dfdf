package queries

import (
	"context"

	"storefront/internal/core/domain/model/contract"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/workflow"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderWorkflowQueryHandler loads the checklist a row opens for editing.
// The stored checklist is synthesized against the row's current display
// items, exactly as the task-change write path will see it, so the indexes
// the client sends back match.
type GetOrderWorkflowQueryHandler struct {
	db          *gorm.DB
	fulfillment services.Fulfillment
}

// NewGetOrderWorkflowQueryHandler creates a handler for the checklist query.
// Requires a GORM database connection for query execution.
func NewGetOrderWorkflowQueryHandler(db *gorm.DB) GetOrderWorkflowQueryHandler {
	return GetOrderWorkflowQueryHandler{
		db:          db,
		fulfillment: services.NewFulfillment(),
	}
}

// Handle executes the checklist query.
// Returns errs.ErrObjectNotFound when the row does not exist.
func (h GetOrderWorkflowQueryHandler) Handle(
	ctx context.Context,
	query GetOrderWorkflowQuery,
) (GetOrderWorkflowQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderWorkflowQueryResponse{}, err
	}

	contracts, err := loadContracts(ctx, h.db)
	if err != nil {
		return GetOrderWorkflowQueryResponse{}, err
	}

	target, linked, err := h.findTarget(ctx, query, contracts)
	if err != nil {
		return GetOrderWorkflowQueryResponse{}, err
	}

	effective := workflow.EnsureDeliveryTasks(
		target.Workflow(),
		h.fulfillment.DisplayNames(target, linked),
	)

	return GetOrderWorkflowQueryResponse{
		OrderID:    target.ID(),
		Virtual:    target.IsVirtual(),
		Categories: effective,
	}, nil
}

func (h GetOrderWorkflowQueryHandler) findTarget(
	ctx context.Context,
	query GetOrderWorkflowQuery,
	contracts []*contract.Contract,
) (*order.Order, *contract.Contract, error) {
	if query.Virtual() {
		for _, c := range contracts {
			if c.ID().IsEqual(query.OrderID()) {
				target, err := services.VirtualOrderFromContract(c)
				if err != nil {
					return nil, nil, err
				}
				return target, c, nil
			}
		}
		return nil, nil, errs.NewObjectNotFoundError("contract_id", query.OrderID())
	}

	orders, err := loadOrders(ctx, h.db)
	if err != nil {
		return nil, nil, err
	}

	for _, o := range orders {
		if o.ID().IsEqual(query.OrderID()) {
			return o, services.NewContractIndex(contracts).Resolve(o), nil
		}
	}
	return nil, nil, errs.NewObjectNotFoundError("order_id", query.OrderID())
}
