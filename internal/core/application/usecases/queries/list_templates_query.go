package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/workflow"
	"storefront/internal/pkg/guard"
)

var ErrListTemplatesQueryIsNotConstructed = errors.New(
	"ListTemplatesQuery must be created via NewListTemplatesQuery constructor",
)

// ListTemplatesQuery retrieves every workflow template. The UI loads them
// once per session to offer the apply-template action.
type ListTemplatesQuery struct {
	guard guard.ConstructorGuard
}

// NewListTemplatesQuery creates a parameterless query for workflow templates.
func NewListTemplatesQuery() ListTemplatesQuery {
	return ListTemplatesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListTemplatesQueryIsNotConstructed if validation fails.
func (q ListTemplatesQuery) Validate() error {
	return q.guard.Validate(ErrListTemplatesQueryIsNotConstructed)
}

// ListTemplatesQueryResponse represents a workflow template read model.
type ListTemplatesQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Categories []workflow.Category
}
