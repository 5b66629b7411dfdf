package templaterepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/workflow"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTemplateRepository implements TemplateRepository using GORM.
type GormTemplateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTemplateRepository creates a new GORM template repository.
func NewGormTemplateRepository(db *gorm.DB, tracker aggregateTracker) *GormTemplateRepository {
	return &GormTemplateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new template to the database.
func (r *GormTemplateRepository) Add(ctx context.Context, aggregate *workflow.Template) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a template by ID.
func (r *GormTemplateRepository) Get(ctx context.Context, id kernel.UUID) (*workflow.Template, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TemplateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("template", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every template, sorted by name.
func (r *GormTemplateRepository) GetAll(ctx context.Context) ([]*workflow.Template, error) {
	var dtos []TemplateDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	templates := make([]*workflow.Template, 0, len(dtos))
	for _, dto := range dtos {
		tpl, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}

	return templates, nil
}
