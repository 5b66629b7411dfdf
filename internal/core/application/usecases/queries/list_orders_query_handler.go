package queries

import (
	"context"
	"strings"

	"storefront/internal/core/domain/model/contract"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/workflow"
	"storefront/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler assembles the order listing read model.
// Loads all orders and contracts, resolves each order's contract, hides rows
// without displayable items, appends virtual placeholder rows for unclaimed
// contracts with store items, and derives each row's status on the fly.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery(nil, "")
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//	fmt.Printf("%d visible orders\n", resp.Counts.All)
type ListOrdersQueryHandler struct {
	db          *gorm.DB
	fulfillment services.Fulfillment
}

// NewListOrdersQueryHandler creates a handler for the order listing query.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		db:          db,
		fulfillment: services.NewFulfillment(),
	}
}

// Handle executes the listing query.
// Stored orders come first, newest first, followed by virtual rows. Counts
// cover the whole visible set: virtual rows are counted, rows hidden for
// having no displayable items are not. The search term and status filter
// only narrow the returned rows, never the counts.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	orders, err := loadOrders(ctx, h.db)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	contracts, err := loadContracts(ctx, h.db)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	index := services.NewContractIndex(contracts)

	claimed := make(map[string]struct{})
	rows := make([]ListOrdersQueryRow, 0, len(orders))
	var counts StatusCounts

	appendRow := func(o *order.Order, c *contract.Contract) {
		items := h.fulfillment.DisplayItems(o, c)
		if len(items) == 0 {
			return
		}

		status := h.fulfillment.DeriveStatus(o, c)
		counts.All++
		switch status {
		case order.Pending:
			counts.Pending++
		case order.Processing:
			counts.Processing++
		case order.Completed:
			counts.Completed++
		case order.Unknown:
		}

		if !matchesSearch(o, query.Search()) {
			return
		}
		if query.Status() != nil && *query.Status() != status {
			return
		}

		effective := workflow.EnsureDeliveryTasks(
			h.fulfillment.ResolveWorkflow(o, c),
			h.fulfillment.DisplayNames(o, c),
		)

		rows = append(rows, ListOrdersQueryRow{
			ID:            o.ID(),
			Virtual:       o.IsVirtual(),
			CustomerName:  o.CustomerName(),
			CustomerEmail: o.CustomerEmail(),
			CreatedAt:     o.CreatedAt(),
			DueDate:       o.DueDate(),
			Items:         items,
			Status:        status,
			Categories:    categoryProgress(effective),
		})
	}

	for _, o := range orders {
		c := index.Resolve(o)
		if c != nil {
			claimed[c.ID().String()] = struct{}{}
		}
		appendRow(o, c)
	}

	for _, c := range contracts {
		if len(c.StoreItems()) == 0 {
			continue
		}
		if _, taken := claimed[c.ID().String()]; taken {
			continue
		}

		virtual, vErr := services.VirtualOrderFromContract(c)
		if vErr != nil {
			return ListOrdersQueryResponse{}, vErr
		}
		appendRow(virtual, c)
	}

	return ListOrdersQueryResponse{Orders: rows, Counts: counts}, nil
}

// matchesSearch reports whether the order's customer name or email contains
// the term, comparing lower-cased strings. Accents are significant here,
// unlike the checklist title matching.
func matchesSearch(o *order.Order, term string) bool {
	if term == "" {
		return true
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	return strings.Contains(strings.ToLower(o.CustomerName()), needle) ||
		strings.Contains(strings.ToLower(o.CustomerEmail()), needle)
}

func categoryProgress(wf []workflow.Category) []CategoryProgress {
	progress := make([]CategoryProgress, len(wf))
	for i, c := range wf {
		progress[i] = CategoryProgress{Name: c.Name, Percent: c.Progress()}
	}
	return progress
}
