// Package templaterepo provides data transfer objects and mapping functions
// for workflow template persistence.
package templaterepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// TemplateDTO represents the database structure for persisting workflow
// templates. The category list is stored as a jsonb document.
type TemplateDTO struct {
	ID         uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name       string              `gorm:"type:text"`
	Categories []workflow.Category `gorm:"serializer:json;type:jsonb"`
}

// TableName specifies the database table name for template entities.
func (TemplateDTO) TableName() string {
	return "templates"
}

// fromDomain converts a template domain aggregate to its database representation.
func fromDomain(aggregate *workflow.Template) TemplateDTO {
	return TemplateDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Categories: aggregate.Categories(),
	}
}

// toDomain converts a database DTO to a template domain aggregate using RestoreTemplate.
func toDomain(dto TemplateDTO) (*workflow.Template, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return workflow.RestoreTemplate(id, dto.Name, dto.Categories)
}
