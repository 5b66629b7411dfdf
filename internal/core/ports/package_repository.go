package ports

import (
	"context"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
)

// PackageRepository defines the persistence contract for catalog packages.
type PackageRepository interface {
	// Add persists a new package. Storage assigns the server-side
	// creation timestamp.
	Add(ctx context.Context, aggregate *catalog.Package) error

	// Update persists changes to an existing package.
	Update(ctx context.Context, aggregate *catalog.Package) error

	// Get retrieves a package by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Package, error)

	// GetAll retrieves packages, optionally restricted to a single type.
	// A nil filter returns the whole catalog.
	GetAll(ctx context.Context, packageType *catalog.PackageType) ([]*catalog.Package, error)

	// Delete removes a package by its unique identifier.
	// Deleting a missing package is an error.
	Delete(ctx context.Context, id kernel.UUID) error
}
