package commands

import (
	"errors"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpdatePackageCommandIsNotConstructed = errors.New(
	"UpdatePackageCommand must be created via NewUpdatePackageCommand constructor",
)

// UpdatePackageCommand represents a partial update to a catalog package.
// Only the fields present in Changes are touched; nil pointers and nil
// slices leave the stored values alone.
type UpdatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	changes   catalog.PackageChanges

	guard guard.ConstructorGuard
}

// NewUpdatePackageCommand creates a command to update a catalog package.
// Validates the package identifier; field-level validation happens when the
// changes are applied to the aggregate.
func NewUpdatePackageCommand(packageID kernel.UUID, changes catalog.PackageChanges) (UpdatePackageCommand, error) {
	command := UpdatePackageCommand{
		changes: changes,

		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPackageID(packageID); err != nil {
		return UpdatePackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePackageCommandIsNotConstructed if validation fails.
func (c UpdatePackageCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package being updated.
func (c UpdatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// Changes returns the partial update to apply.
func (c UpdatePackageCommand) Changes() catalog.PackageChanges {
	return c.changes
}

func (c *UpdatePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}
