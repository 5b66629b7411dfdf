// Package catalog provides the Package aggregate for the storefront's price
// plans. Plans are thin CRUD data: the only domain behavior is validation and
// the coercion of loosely-typed stored fields (prices as strings, feature
// lists as arbitrary values) into well-formed values.
//
// The package includes:
//   - Package: The aggregate root with partial-update support (Apply)
//   - PackageType: The shoot classification enum (portrait, maternity, events)
//   - CoercePrice / CoerceStringList / CoercePackageType: Boundary parsers
//     that turn malformed document fields into safe defaults instead of errors
package catalog
