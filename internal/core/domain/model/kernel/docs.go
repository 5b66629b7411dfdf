// Package kernel provides shared value objects used across the storefront
// domain model. It contains building blocks that carry no business logic of
// their own but enforce invariants every aggregate relies on.
//
// The package includes:
//   - UUID: An immutable identifier value object wrapping github.com/google/uuid
//   - Normalize / NormalizeEmail: Canonical text forms used for all
//     title, product-name and email matching in the domain
//
// Types in this package are immutable and safe for concurrent use.
package kernel
