package queries

import (
	"context"
	"database/sql"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListPackagesQueryHandler retrieves catalog packages from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListPackagesQueryHandler struct {
	db *gorm.DB
}

// NewListPackagesQueryHandler creates a handler for package catalog queries.
// Requires a GORM database connection for query execution.
func NewListPackagesQueryHandler(db *gorm.DB) ListPackagesQueryHandler {
	return ListPackagesQueryHandler{db: db}
}

// Handle executes the query to retrieve catalog packages.
// Results are sorted by price, then title, for stable storefront display.
// A stored type that no longer parses falls back to portrait.
func (h ListPackagesQueryHandler) Handle(
	ctx context.Context,
	query ListPackagesQuery,
) ([]ListPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			type,
			title,
			price,
			duration,
			description,
			features,
			image_url,
			category,
			active,
			sections,
			created_at
		FROM packages
	`
	args := make([]any, 0, 1)
	if query.PackageType() != nil {
		sqlQuery += ` WHERE type = ?`
		args = append(args, query.PackageType().String())
	}
	sqlQuery += ` ORDER BY price, title`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]ListPackagesQueryResponse, 0)

	for rows.Next() {
		var (
			pkg         ListPackagesQueryResponse
			id          uuid.UUID
			packageType string
			features    pq.StringArray
			category    sql.NullString
			active      sql.NullBool
			sections    pq.StringArray
			createdAt   sql.NullTime
		)

		err = rows.Scan(
			&id,
			&packageType,
			&pkg.Title,
			&pkg.Price,
			&pkg.Duration,
			&pkg.Description,
			&features,
			&pkg.ImageURL,
			&category,
			&active,
			&sections,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		packageID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		pkg.ID = packageID
		pkg.Type = catalog.CoercePackageType(packageType)
		pkg.Features = []string(features)
		pkg.Category = category.String
		if active.Valid {
			pkg.Active = &active.Bool
		}
		if sections != nil {
			pkg.Sections = []string(sections)
		}
		pkg.CreatedAt = createdAt.Time

		packages = append(packages, pkg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
