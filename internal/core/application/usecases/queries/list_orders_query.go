// Package queries contains read-side operations in the CQRS architecture.
// Query handlers read the database directly and assemble response models;
// they never modify state.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the order listing: stored orders plus virtual
// placeholder rows for contracts that have purchasable items but no matching
// order. Rows without displayable items are hidden.
//
// An optional status filter restricts the returned rows to one derived
// status; the per-status counts always cover the full visible set. The
// search term matches customer name or email, case-insensitively.
//
// Example:
//
//	status := order.Pending
//	query, _ := NewListOrdersQuery(&status, "maria")
//	handler := NewListOrdersQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d of %d orders pending\n", resp.Counts.Pending, resp.Counts.All)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status
	search string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the order listing.
// A nil status returns rows of every status. The search term may be empty.
func NewListOrdersQuery(status *order.Status, search string) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		status: status,
		search: search,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the optional derived-status filter.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Search returns the free-form customer name/email search term.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// CategoryProgress is the per-category completion summary shown on a listing
// row.
type CategoryProgress struct {
	Name    string
	Percent int
}

// StatusCounts aggregates the visible rows by derived status.
type StatusCounts struct {
	All        int
	Pending    int
	Processing int
	Completed  int
}

// ListOrdersQueryRow is one row of the order listing. Virtual rows carry
// their backing contract's identifier and a zero creation time.
type ListOrdersQueryRow struct {
	ID            kernel.UUID
	Virtual       bool
	CustomerName  string
	CustomerEmail string
	CreatedAt     time.Time
	DueDate       time.Time
	Items         []kernel.LineItem
	Status        order.Status
	Categories    []CategoryProgress
}

// ListOrdersQueryResponse bundles the filtered rows with the counts over the
// whole visible set.
type ListOrdersQueryResponse struct {
	Orders []ListOrdersQueryRow
	Counts StatusCounts
}
