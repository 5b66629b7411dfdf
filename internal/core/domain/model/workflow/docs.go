// Package workflow provides the checklist model used to track order
// fulfillment. A workflow is an ordered list of categories, each holding
// tasks with a done flag.
//
// The package includes:
//   - Task and Category: plain checklist values serialized as-is to storage
//   - Template: a reusable preset that can replace an order's checklist
//   - EnsureDeliveryTasks: the synthesizer that guarantees a delivery
//     category exists with one task per purchased product
//   - Toggle and MergeDeliveryDone: pure checklist transformations used by
//     the task-change write path
//
// Key business rules:
//   - Task identity is the normalized title (kernel.Normalize), never the ID
//   - A category whose normalized name contains "entrega" is the delivery
//     category; its canonical task titles are "Entregar {productName}"
//   - All transformations are copy-on-write; callers' checklists are never
//     mutated in place
package workflow
