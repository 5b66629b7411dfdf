package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrListPackagesQueryIsNotConstructed = errors.New(
	"ListPackagesQuery must be created via NewListPackagesQuery constructor",
)

// ListPackagesQuery retrieves the catalog packages, optionally restricted to
// a single package type.
//
// Example:
//
//	packageType := catalog.Portrait
//	query, _ := NewListPackagesQuery(&packageType)
//	handler := NewListPackagesQueryHandler(db)
//
//	packages, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list packages: %w", err)
//	}
//	fmt.Printf("Found %d portrait packages\n", len(packages))
type ListPackagesQuery struct { //nolint:recvcheck //using for validation
	packageType *catalog.PackageType

	guard guard.ConstructorGuard
}

// NewListPackagesQuery creates a query for the package catalog.
// A nil type returns every package.
func NewListPackagesQuery(packageType *catalog.PackageType) (ListPackagesQuery, error) {
	if packageType != nil {
		if err := packageType.Validate(); err != nil {
			return ListPackagesQuery{}, err
		}
	}

	return ListPackagesQuery{
		packageType: packageType,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListPackagesQueryIsNotConstructed if validation fails.
func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}

// PackageType returns the optional package type filter.
func (q ListPackagesQuery) PackageType() *catalog.PackageType {
	return q.packageType
}

// ListPackagesQueryResponse represents a catalog package read model.
type ListPackagesQueryResponse struct {
	ID          kernel.UUID
	Type        catalog.PackageType
	Title       string
	Price       float64
	Duration    string
	Description string
	Features    []string
	ImageURL    string
	Category    string
	Active      *bool
	Sections    []string
	CreatedAt   time.Time
}
