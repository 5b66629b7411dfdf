package commands

import (
	"errors"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreatePackageCommandIsNotConstructed = errors.New(
		"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
	)
	ErrPackageTitleIsRequired = errors.New("package title is required")
	ErrPackagePriceIsInvalid  = errors.New("package price must not be negative")
)

// CreatePackageCommand represents a request to add a package to the catalog.
// Loosely typed admin input is coerced at the transport boundary; by the time
// the command is built the fields carry their final types.
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID   kernel.UUID
	packageType catalog.PackageType
	title       string
	price       float64
	duration    string
	description string
	features    []string
	imageURL    string

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand creates a command to register a catalog package.
// Validates the identifier, package type, title and price.
func NewCreatePackageCommand(
	packageID kernel.UUID,
	packageType catalog.PackageType,
	title string,
	price float64,
	duration string,
	description string,
	features []string,
	imageURL string,
) (CreatePackageCommand, error) {
	command := CreatePackageCommand{
		duration:    duration,
		description: description,
		features:    features,
		imageURL:    imageURL,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPackageID(packageID),
		command.setPackageType(packageType),
		command.setTitle(title),
		command.setPrice(price),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePackageCommandIsNotConstructed if validation fails.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the new package.
func (c CreatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// PackageType returns the catalog section the package belongs to.
func (c CreatePackageCommand) PackageType() catalog.PackageType {
	return c.packageType
}

// Title returns the package title.
func (c CreatePackageCommand) Title() string {
	return c.title
}

// Price returns the package price.
func (c CreatePackageCommand) Price() float64 {
	return c.price
}

// Duration returns the free-form session duration text.
func (c CreatePackageCommand) Duration() string {
	return c.duration
}

// Description returns the package description.
func (c CreatePackageCommand) Description() string {
	return c.description
}

// Features returns the bullet-point feature list.
func (c CreatePackageCommand) Features() []string {
	return c.features
}

// ImageURL returns the promotional image location.
func (c CreatePackageCommand) ImageURL() string {
	return c.imageURL
}

func (c *CreatePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

func (c *CreatePackageCommand) setPackageType(packageType catalog.PackageType) error {
	if err := packageType.Validate(); err != nil {
		return err
	}

	c.packageType = packageType
	return nil
}

func (c *CreatePackageCommand) setTitle(title string) error {
	if title == "" {
		return ErrPackageTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreatePackageCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 0, nil)
	}

	c.price = price
	return nil
}
