// Package services provides domain services that operate across the order,
// contract and workflow models. They implement the read-side fulfillment
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - ContractIndex: resolves which contract an order links to, by explicit
//     id or by normalized client email
//   - Fulfillment: computes an order's displayed items, effective checklist
//     and derived three-state status
//
// All services are pure: they never touch persistence and never mutate the
// aggregates they are given.
package services
