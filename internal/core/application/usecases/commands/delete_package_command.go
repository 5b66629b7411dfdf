package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDeletePackageCommandIsNotConstructed = errors.New(
	"DeletePackageCommand must be created via NewDeletePackageCommand constructor",
)

// DeletePackageCommand represents a request to remove a catalog package.
type DeletePackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePackageCommand creates a command to delete a package by identifier.
func NewDeletePackageCommand(packageID kernel.UUID) (DeletePackageCommand, error) {
	command := DeletePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPackageID(packageID); err != nil {
		return DeletePackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeletePackageCommandIsNotConstructed if validation fails.
func (c DeletePackageCommand) Validate() error {
	return c.guard.Validate(ErrDeletePackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to delete.
func (c DeletePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c *DeletePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}
