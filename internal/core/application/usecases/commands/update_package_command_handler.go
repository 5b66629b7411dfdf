package commands

import (
	"context"
)

// UpdatePackageCommandHandler applies a partial update to a stored package.
type UpdatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewUpdatePackageCommandHandler creates a handler for package updates.
func NewUpdatePackageCommandHandler(uowFactory PackageUoWFactory) UpdatePackageCommandHandler {
	return UpdatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package update command.
// Loads the package, applies the partial changes and persists the result in
// a single transaction.
func (h UpdatePackageCommandHandler) Handle(ctx context.Context, command UpdatePackageCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packagesRepo := uow.PackageRepository()

	pkg, err := packagesRepo.Get(ctx, command.PackageID())
	if err != nil {
		return err
	}

	if err = pkg.Apply(command.Changes()); err != nil {
		return err
	}

	if err = packagesRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
