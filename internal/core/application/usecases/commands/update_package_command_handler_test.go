package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func updatePackageFixture(t *testing.T) *catalog.Package {
	t.Helper()

	pkg, err := catalog.NewPackage(
		kernel.NewUUID(), catalog.Portrait, "Ensaio Gestante", 450,
		"2 horas", "", []string{"30 fotos editadas"}, "",
	)
	require.NoError(t, err)
	return pkg
}

func TestUpdatePackageCommandHandler_Handle_PartialUpdate(t *testing.T) {
	ctx := t.Context()
	pkg := updatePackageFixture(t)

	newPrice := 499.0
	cmd, err := commands.NewUpdatePackageCommand(pkg.ID(), catalog.PackageChanges{
		Price: &newPrice,
	})
	require.NoError(t, err)

	packageRepo := new(PackageRepo)
	uow := new(PackageUnitOfWork)
	factory := new(PackageFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Get", ctx, pkg.ID()).Return(pkg, nil).Once(),
		packageRepo.On("Update", ctx, pkg).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdatePackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.InEpsilon(t, 499.0, pkg.Price(), 1e-9)
	// untouched fields survive the partial update
	assert.Equal(t, "Ensaio Gestante", pkg.Title())
	assert.Equal(t, []string{"30 fotos editadas"}, pkg.Features())
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	packageRepo.AssertExpectations(t)
}

func TestUpdatePackageCommandHandler_Handle_PackageNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdatePackageCommand(kernel.NewUUID(), catalog.PackageChanges{})
	require.NoError(t, err)

	packageRepo := new(PackageRepo)
	uow := new(PackageUnitOfWork)
	factory := new(PackageFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Get", ctx, cmd.PackageID()).Return(nil, errors.New("package not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdatePackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "package not found")
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	packageRepo.AssertExpectations(t)
}

func TestDeletePackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeletePackageCommand(kernel.NewUUID())
	require.NoError(t, err)

	packageRepo := new(PackageRepo)
	uow := new(PackageUnitOfWork)
	factory := new(PackageFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Delete", ctx, cmd.PackageID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeletePackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	packageRepo.AssertExpectations(t)
}

func TestDeletePackageCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeletePackageCommand(kernel.NewUUID())
	require.NoError(t, err)

	packageRepo := new(PackageRepo)
	uow := new(PackageUnitOfWork)
	factory := new(PackageFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Delete", ctx, cmd.PackageID()).Return(errors.New("delete error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeletePackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete error")
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	packageRepo.AssertExpectations(t)
}
