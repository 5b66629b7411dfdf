// Package packagerepo provides data transfer objects and mapping functions for
// catalog package persistence.
package packagerepo

import (
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PackageDTO represents the database structure for persisting catalog
// packages. Feature and section lists are stored as Postgres text arrays;
// sections and active stay NULL when the admin never set them. The creation
// timestamp is assigned on insert.
type PackageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type        string    `gorm:"type:text;index"`
	Title       string    `gorm:"type:text"`
	Price       float64
	Duration    string         `gorm:"type:text"`
	Description string         `gorm:"type:text"`
	Features    pq.StringArray `gorm:"type:text[]"`
	ImageURL    string         `gorm:"type:text"`
	Category    string         `gorm:"type:text"`
	Active      *bool
	Sections    pq.StringArray `gorm:"type:text[]"`
	CreatedAt   time.Time      `gorm:"type:timestamptz;autoCreateTime"`
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}

// fromDomain converts a package domain aggregate to its database representation.
func fromDomain(aggregate *catalog.Package) PackageDTO {
	var sections pq.StringArray
	if s := aggregate.Sections(); s != nil {
		sections = pq.StringArray(s)
	}

	return PackageDTO{
		ID:          aggregate.ID().Bytes(),
		Type:        aggregate.Type().String(),
		Title:       aggregate.Title(),
		Price:       aggregate.Price(),
		Duration:    aggregate.Duration(),
		Description: aggregate.Description(),
		Features:    pq.StringArray(aggregate.Features()),
		ImageURL:    aggregate.ImageURL(),
		Category:    aggregate.Category(),
		Active:      aggregate.Active(),
		Sections:    sections,
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a package domain aggregate using
// RestorePackage. A stored type that no longer parses falls back to portrait.
func toDomain(dto PackageDTO) (*catalog.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var sections []string
	if dto.Sections != nil {
		sections = []string(dto.Sections)
	}

	return catalog.RestorePackage(
		id,
		catalog.CoercePackageType(dto.Type),
		dto.Title,
		dto.Price,
		dto.Duration,
		dto.Description,
		[]string(dto.Features),
		dto.ImageURL,
		dto.Category,
		dto.Active,
		sections,
		dto.CreatedAt,
	)
}
