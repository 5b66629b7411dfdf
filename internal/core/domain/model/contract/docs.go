// Package contract provides the Contract aggregate: a long-lived client
// agreement holding purchasable store items and its own copy of the
// fulfillment checklist. Contracts restrict which order items are displayed
// and serve as the checklist fallback for orders without one of their own.
package contract
