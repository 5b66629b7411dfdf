package workflow

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrTemplateIsNotConstructed is returned when a Template instance was not
// created through NewTemplate or RestoreTemplate.
var ErrTemplateIsNotConstructed = errors.New("Template must be created via NewTemplate or RestoreTemplate")

// Template is a reusable checklist preset. Applying a template to an order
// replaces the order's current workflow entirely with a fresh copy of the
// template's categories, with every done flag reset.
type Template struct {
	id         kernel.UUID
	name       string
	categories []Category

	isConstructed bool
}

// NewTemplate creates a workflow template with validation.
// The id must be valid and the name non-empty; categories may be empty.
func NewTemplate(id kernel.UUID, name string, categories []Category) (*Template, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Template{
		id:            id,
		name:          name,
		categories:    Clone(categories),
		isConstructed: true,
	}, nil
}

// RestoreTemplate reconstructs a template from persistence.
// It applies the same validation as NewTemplate.
func RestoreTemplate(id kernel.UUID, name string, categories []Category) (*Template, error) {
	return NewTemplate(id, name, categories)
}

// Validate ensures the Template instance was properly constructed.
func (t *Template) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTemplateIsNotConstructed
	}
	return nil
}

// ID returns the template's unique identifier.
func (t *Template) ID() kernel.UUID {
	return t.id
}

// Name returns the template's display name.
func (t *Template) Name() string {
	return t.name
}

// Categories returns a deep copy of the template's categories.
func (t *Template) Categories() []Category {
	return Clone(t.categories)
}

// Instantiate produces a checklist from the template, ready to replace an
// order's workflow: categories and tasks missing an id get a fresh one, and
// every task's done flag is reset to false regardless of how it was stored.
func (t *Template) Instantiate() []Category {
	instantiated := Clone(t.categories)
	for i := range instantiated {
		if instantiated[i].ID == "" {
			instantiated[i].ID = NewID()
		}
		for j := range instantiated[i].Tasks {
			if instantiated[i].Tasks[j].ID == "" {
				instantiated[i].Tasks[j].ID = NewID()
			}
			instantiated[i].Tasks[j].Done = false
		}
	}
	return instantiated
}
