package catalog

import (
	"errors"
	"strconv"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through NewPackage or RestorePackage.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage")

// Package is a price plan offered by the storefront: a named, priced bundle
// of services with descriptive fields shown on the public site.
//
// Package invariants:
//   - Must have a valid unique identifier and non-empty title
//   - Price is never negative; malformed stored prices coerce to zero
//   - Features and sections are always well-formed string lists
type Package struct {
	// id is the unique identifier for the package
	id kernel.UUID

	// packageType classifies the covered shoot kind
	packageType PackageType

	// title is the display name of the plan
	title string

	// price is the plan price in the store currency
	price float64

	// duration is a free-form session duration label
	duration string

	// description is the marketing description
	description string

	// features are the bullet points listed on the plan card
	features []string

	// imageURL points at the plan's cover image
	imageURL string

	// category is an optional grouping label ("" when unset)
	category string

	// active marks whether the plan is publicly visible (nil when the
	// stored document never set the admin-only flag)
	active *bool

	// sections optionally restricts which site sections show the plan
	sections []string

	// createdAt is the server-side creation timestamp (zero when unknown)
	createdAt time.Time

	// isConstructed ensures the package was created via a constructor
	isConstructed bool
}

// NewPackage creates a new Package with validation. The id must be valid, the
// title non-empty and the price non-negative. Features and sections are
// copied; nil collapses to an empty list for features and stays absent for
// sections.
func NewPackage(
	id kernel.UUID,
	packageType PackageType,
	title string,
	price float64,
	duration string,
	description string,
	features []string,
	imageURL string,
) (*Package, error) {
	pkg := &Package{isConstructed: true}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setType(packageType),
		pkg.setTitle(title),
		pkg.setPrice(price),
	); err != nil {
		return nil, err
	}

	pkg.duration = duration
	pkg.description = description
	pkg.features = cloneStrings(features)
	pkg.imageURL = imageURL
	return pkg, nil
}

// RestorePackage reconstructs a package from persistence, including the
// optional admin fields and creation timestamp.
func RestorePackage(
	id kernel.UUID,
	packageType PackageType,
	title string,
	price float64,
	duration string,
	description string,
	features []string,
	imageURL string,
	category string,
	active *bool,
	sections []string,
	createdAt time.Time,
) (*Package, error) {
	pkg, err := NewPackage(id, packageType, title, price, duration, description, features, imageURL)
	if err != nil {
		return nil, err
	}

	pkg.category = category
	pkg.active = active
	if sections != nil {
		pkg.sections = cloneStrings(sections)
	}
	pkg.createdAt = createdAt
	return pkg, nil
}

// Validate ensures the Package instance was properly constructed.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// Type returns the package's shoot classification.
func (p *Package) Type() PackageType {
	return p.packageType
}

// Title returns the plan's display name.
func (p *Package) Title() string {
	return p.title
}

// Price returns the plan price.
func (p *Package) Price() float64 {
	return p.price
}

// Duration returns the free-form session duration label.
func (p *Package) Duration() string {
	return p.duration
}

// Description returns the marketing description.
func (p *Package) Description() string {
	return p.description
}

// Features returns a copy of the plan's feature bullet points.
func (p *Package) Features() []string {
	return cloneStrings(p.features)
}

// ImageURL returns the plan's cover image URL.
func (p *Package) ImageURL() string {
	return p.imageURL
}

// Category returns the optional grouping label ("" when unset).
func (p *Package) Category() string {
	return p.category
}

// Active returns the optional visibility flag (nil when never set).
func (p *Package) Active() *bool {
	return p.active
}

// Sections returns the optional site-section restriction (nil when unset).
func (p *Package) Sections() []string {
	if p.sections == nil {
		return nil
	}
	return cloneStrings(p.sections)
}

// CreatedAt returns the server-side creation timestamp (zero when unknown).
func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

// SetCategory sets the optional grouping label.
func (p *Package) SetCategory(category string) {
	p.category = category
}

// SetActive sets the admin-only visibility flag.
func (p *Package) SetActive(active bool) {
	p.active = &active
}

// SetSections replaces the optional site-section restriction.
func (p *Package) SetSections(sections []string) {
	if sections == nil {
		p.sections = nil
		return
	}
	p.sections = cloneStrings(sections)
}

// Apply merges a partial update into the package, touching only the fields
// present in the changes. Coercion mirrors the storage rules: a malformed
// price becomes zero and malformed lists become empty.
func (p *Package) Apply(changes PackageChanges) error {
	if changes.Type != nil {
		if err := p.setType(*changes.Type); err != nil {
			return err
		}
	}
	if changes.Title != nil {
		if err := p.setTitle(*changes.Title); err != nil {
			return err
		}
	}
	if changes.Price != nil {
		if err := p.setPrice(*changes.Price); err != nil {
			return err
		}
	}
	if changes.Duration != nil {
		p.duration = *changes.Duration
	}
	if changes.Description != nil {
		p.description = *changes.Description
	}
	if changes.Features != nil {
		p.features = cloneStrings(changes.Features)
	}
	if changes.ImageURL != nil {
		p.imageURL = *changes.ImageURL
	}
	if changes.Category != nil {
		p.category = *changes.Category
	}
	if changes.Active != nil {
		p.active = changes.Active
	}
	if changes.Sections != nil {
		p.sections = cloneStrings(changes.Sections)
	}
	return nil
}

// PackageChanges is a partial update to a package. Nil fields are left
// untouched; non-nil fields replace the current value.
type PackageChanges struct {
	Type        *PackageType
	Title       *string
	Price       *float64
	Duration    *string
	Description *string
	Features    []string
	ImageURL    *string
	Category    *string
	Active      *bool
	Sections    []string
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setType(packageType PackageType) error {
	if err := packageType.Validate(); err != nil {
		return err
	}
	p.packageType = packageType
	return nil
}

func (p *Package) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *Package) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 0, "unbounded")
	}
	p.price = price
	return nil
}

// CoercePrice converts a loosely-typed stored value into a price, falling
// back to zero for anything non-numeric. Stored documents carry prices as
// numbers or numeric strings.
func CoercePrice(v any) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// CoerceStringList converts a loosely-typed stored value into a string list,
// dropping non-string and empty entries. Non-list values become an empty list.
func CoerceStringList(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return []string{}
	}
	result := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok && s != "" {
			result = append(result, s)
		}
	}
	return result
}

func cloneStrings(values []string) []string {
	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}
