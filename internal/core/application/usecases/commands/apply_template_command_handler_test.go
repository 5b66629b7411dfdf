package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/workflow"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type TemplateRepo struct{ mock.Mock }

func (m *TemplateRepo) Add(ctx context.Context, tpl *workflow.Template) error {
	args := m.Called(ctx, tpl)
	return args.Error(0)
}

func (m *TemplateRepo) Get(ctx context.Context, id kernel.UUID) (*workflow.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Template), args.Error(1)
}

func (m *TemplateRepo) GetAll(ctx context.Context) ([]*workflow.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workflow.Template), args.Error(1)
}

type TemplateUnitOfWork struct{ mock.Mock }

func (m *TemplateUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *TemplateUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *TemplateUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *TemplateUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *TemplateUnitOfWork) TemplateRepository() ports.TemplateRepository {
	args := m.Called()
	return args.Get(0).(ports.TemplateRepository)
}

type ApplyUoWFactory struct{ mock.Mock }

func (m *ApplyUoWFactory) Create() commands.TemplateUoW {
	args := m.Called()
	return args.Get(0).(commands.TemplateUoW)
}

func TestApplyTemplateCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testTemplate, err := workflow.NewTemplate(kernel.NewUUID(), "Wedding", []workflow.Category{
		{Name: "Edição", Tasks: []workflow.Task{{Title: "Selecionar fotos", Done: true}}},
	})
	require.NoError(t, err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "Maria Silva", "maria@example.com", time.Now(), nil,
	)
	require.NoError(t, err)

	cmd, err := commands.NewApplyTemplateCommand(testOrder.ID(), testTemplate.ID())
	require.NoError(t, err)

	templateRepo := new(TemplateRepo)
	orderRepo := new(ToggleOrderRepo)
	uow := new(TemplateUnitOfWork)
	factory := new(ApplyUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TemplateRepository").Return(templateRepo).Once(),
		templateRepo.On("Get", ctx, testTemplate.ID()).Return(testTemplate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewApplyTemplateCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	templateRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)

	// the instantiated checklist starts unchecked
	wf := testOrder.Workflow()
	require.Len(t, wf, 1)
	require.Len(t, wf[0].Tasks, 1)
	assert.False(t, wf[0].Tasks[0].Done)
	assert.NotEmpty(t, wf[0].Tasks[0].ID)
}

func TestApplyTemplateCommandHandler_Handle_TemplateNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewApplyTemplateCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	templateRepo := new(TemplateRepo)
	uow := new(TemplateUnitOfWork)
	factory := new(ApplyUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TemplateRepository").Return(templateRepo).Once(),
		templateRepo.On("Get", ctx, cmd.TemplateID()).Return(nil, errors.New("template not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewApplyTemplateCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template not found")
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	templateRepo.AssertExpectations(t)
}

func TestApplyTemplateCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ApplyTemplateCommand{} // not constructed properly
	factory := new(ApplyUoWFactory)

	handler := commands.NewApplyTemplateCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewApplyTemplateCommand constructor")
}
