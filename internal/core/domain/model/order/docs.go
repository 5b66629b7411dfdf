// Package order provides the Order aggregate for the storefront's fulfillment
// tracking. An order is a customer purchase carrying raw line items, an
// optional link to a client contract, an order-owned checklist and a manually
// stored status.
//
// The package includes:
//   - Order: The aggregate root managing identity, items, contract link and
//     the order-side checklist
//   - Status: The three-state fulfillment status (pending, processing,
//     completed), derived on read by the services package
//
// Key business rules:
//   - Orders must have a valid unique identifier
//   - The order document exclusively owns its workflow field; the linked
//     contract owns its own copy
//   - Virtual orders are placeholder rows synthesized from contracts and are
//     never persisted
//   - Delivery is due 15 days after creation
package order
