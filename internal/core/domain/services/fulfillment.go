package services

import (
	"storefront/internal/core/domain/model/contract"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/workflow"
)

// Fulfillment is a domain service that answers the read-side questions about
// an order's fulfillment state: which items it displays, which checklist
// applies and what status it derives to. All methods are pure; the contract
// parameter is the result of a ContractIndex resolution and may be nil.
//
// Example usage:
//
//	f := services.NewFulfillment()
//	idx := services.NewContractIndex(contracts)
//	c := idx.Resolve(o)
//	status := f.DeriveStatus(o, c)
type Fulfillment struct{}

// NewFulfillment creates a new Fulfillment service instance.
func NewFulfillment() Fulfillment {
	return Fulfillment{}
}

// DisplayItems restricts an order's line items to those present in the linked
// contract's purchasable items, matched by normalized display name. Orders
// without a contract, or whose contract has no store items, display all their
// raw items. An empty result is a valid state and hides the row from the
// listing.
func (f Fulfillment) DisplayItems(o *order.Order, c *contract.Contract) []kernel.LineItem {
	items := o.Items()
	if c == nil {
		return items
	}

	storeItems := c.StoreItems()
	if len(storeItems) == 0 {
		return items
	}

	names := make(map[string]struct{}, len(storeItems))
	for _, si := range storeItems {
		names[kernel.Normalize(si.Name)] = struct{}{}
	}

	displayed := make([]kernel.LineItem, 0, len(items))
	for _, it := range items {
		if _, ok := names[it.NormalizedName()]; ok {
			displayed = append(displayed, it)
		}
	}
	return displayed
}

// DisplayNames returns the display names of the order's displayed items, in
// item order. These are the product names the delivery checklist must cover.
func (f Fulfillment) DisplayNames(o *order.Order, c *contract.Contract) []string {
	items := f.DisplayItems(o, c)
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.DisplayName()
	}
	return names
}

// ResolveWorkflow picks the effective checklist for an order: the order's own
// checklist when non-empty, else the contract's when non-empty, else an empty
// list. No mutation; the result is always a private copy.
func (f Fulfillment) ResolveWorkflow(o *order.Order, c *contract.Contract) []workflow.Category {
	if wf := o.Workflow(); len(wf) > 0 {
		return wf
	}
	if c != nil {
		if wf := c.Workflow(); len(wf) > 0 {
			return wf
		}
	}
	return []workflow.Category{}
}

// IsDeliveryComplete reports whether every displayed product has a done
// delivery task. Requires at least one displayed item and a delivery category
// with at least one task; every displayed product's canonical title
// ("Entregar {name}") must be among that category's done tasks.
func (f Fulfillment) IsDeliveryComplete(o *order.Order, c *contract.Contract) bool {
	items := f.DisplayItems(o, c)
	if len(items) == 0 {
		return false
	}

	wf := f.ResolveWorkflow(o, c)
	idx := workflow.FindDelivery(wf)
	if idx < 0 || len(wf[idx].Tasks) == 0 {
		return false
	}

	doneTitles := make(map[string]struct{}, len(wf[idx].Tasks))
	for _, t := range wf[idx].Tasks {
		if t.Done {
			doneTitles[kernel.Normalize(t.Title)] = struct{}{}
		}
	}

	for _, it := range items {
		title := kernel.Normalize(workflow.DeliveryTaskTitle(it.DisplayName()))
		if _, ok := doneTitles[title]; !ok {
			return false
		}
	}
	return true
}

// DeriveStatus computes the order's three-state fulfillment status from its
// resolved checklist and delivery completeness. The status is never stored;
// it is recomputed on every read.
//
// Evaluation order is fixed: completeness is checked before the any-done
// rule, so an order whose delivery category was pre-populated fully done is
// completed even when nothing else was ever touched. Checklists with tasks
// but none done, and checklists with no tasks at all, both derive to pending.
func (f Fulfillment) DeriveStatus(o *order.Order, c *contract.Contract) order.Status {
	if f.IsDeliveryComplete(o, c) {
		return order.Completed
	}

	wf := f.ResolveWorkflow(o, c)
	if workflow.HasAnyDone(wf) {
		return order.Processing
	}
	return order.Pending
}

// VirtualOrderFromContract synthesizes a placeholder order row for a contract
// that has purchasable items but no persisted order. The row carries the
// contract's id, client email, store items and checklist.
func VirtualOrderFromContract(c *contract.Contract) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return order.NewVirtualOrder(c.ID(), "", c.ClientEmail(), c.StoreItems(), c.Workflow())
}
