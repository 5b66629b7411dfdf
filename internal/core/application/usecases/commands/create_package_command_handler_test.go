package commands_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type PackageRepo struct{ mock.Mock }

func (m *PackageRepo) Add(ctx context.Context, pkg *catalog.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *PackageRepo) Update(ctx context.Context, pkg *catalog.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *PackageRepo) Get(ctx context.Context, id kernel.UUID) (*catalog.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Package), args.Error(1)
}

func (m *PackageRepo) GetAll(ctx context.Context, packageType *catalog.PackageType) ([]*catalog.Package, error) {
	args := m.Called(ctx, packageType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Package), args.Error(1)
}

func (m *PackageRepo) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type PackageUnitOfWork struct{ mock.Mock }

func (m *PackageUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *PackageUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *PackageUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *PackageUnitOfWork) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

type PackageFactory struct{ mock.Mock }

func (m *PackageFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

func TestCreatePackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePackageCommand(
		kernel.NewUUID(), catalog.Events, "Casamento Completo", 3500,
		"10 horas", "Cobertura completa do evento",
		[]string{"500 fotos editadas", "Álbum impresso"}, "",
	)
	require.NoError(t, err)

	packageRepo := new(PackageRepo)
	uow := new(PackageUnitOfWork)
	factory := new(PackageFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Add", ctx, mock.AnythingOfType("*catalog.Package")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreatePackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	packageRepo.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePackageCommand(
		kernel.NewUUID(), catalog.Portrait, "Ensaio", 450, "", "", nil, "",
	)
	require.NoError(t, err)

	packageRepo := new(PackageRepo)
	uow := new(PackageUnitOfWork)
	factory := new(PackageFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Add", ctx, mock.AnythingOfType("*catalog.Package")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreatePackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "add error")
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	packageRepo.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreatePackageCommand{} // not constructed properly
	factory := new(PackageFactory)

	handler := commands.NewCreatePackageCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewCreatePackageCommand constructor")
}
