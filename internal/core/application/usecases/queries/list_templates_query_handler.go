package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListTemplatesQueryHandler retrieves workflow templates from the database.
type ListTemplatesQueryHandler struct {
	db *gorm.DB
}

// NewListTemplatesQueryHandler creates a handler for template queries.
// Requires a GORM database connection for query execution.
func NewListTemplatesQueryHandler(db *gorm.DB) ListTemplatesQueryHandler {
	return ListTemplatesQueryHandler{db: db}
}

// Handle executes the query to retrieve all workflow templates, sorted by
// name for consistent output.
func (h ListTemplatesQueryHandler) Handle(
	ctx context.Context,
	query ListTemplatesQuery,
) ([]ListTemplatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			categories
		FROM templates
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]ListTemplatesQueryResponse, 0)

	for rows.Next() {
		var (
			template      ListTemplatesQueryResponse
			id            uuid.UUID
			categoriesRaw []byte
		)

		err = rows.Scan(
			&id,
			&template.Name,
			&categoriesRaw,
		)
		if err != nil {
			return nil, err
		}

		templateID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		template.ID = templateID

		categories, catErr := unmarshalWorkflow(categoriesRaw)
		if catErr != nil {
			return nil, catErr
		}
		template.Categories = categories

		templates = append(templates, template)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}
