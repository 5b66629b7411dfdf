package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/workflow"
)

// TemplateRepository defines the persistence contract for workflow templates.
// Templates are read once per session by the UI and cached there; the write
// side only needs lookup by id when applying a template to an order.
type TemplateRepository interface {
	// Add persists a new workflow template.
	Add(ctx context.Context, aggregate *workflow.Template) error

	// Get retrieves a template by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*workflow.Template, error)

	// GetAll retrieves every workflow template.
	GetAll(ctx context.Context) ([]*workflow.Template, error)
}
