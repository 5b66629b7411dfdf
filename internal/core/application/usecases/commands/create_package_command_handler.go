package commands

import (
	"context"

	"storefront/internal/core/domain/model/catalog"
)

// CreatePackageCommandHandler registers a new catalog package.
type CreatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewCreatePackageCommandHandler creates a handler for package creation.
func NewCreatePackageCommandHandler(uowFactory PackageUoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package creation command.
// Builds the package aggregate and persists it in a single transaction.
// Storage assigns the server-side creation timestamp.
func (h CreatePackageCommandHandler) Handle(ctx context.Context, command CreatePackageCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	pkg, err := catalog.NewPackage(
		command.PackageID(),
		command.PackageType(),
		command.Title(),
		command.Price(),
		command.Duration(),
		command.Description(),
		command.Features(),
		command.ImageURL(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
