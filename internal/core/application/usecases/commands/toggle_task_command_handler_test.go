package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/contract"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/workflow"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ToggleOrderRepo struct{ mock.Mock }

func (m *ToggleOrderRepo) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *ToggleOrderRepo) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *ToggleOrderRepo) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *ToggleOrderRepo) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *ToggleOrderRepo) GetAllUnlinked(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *ToggleOrderRepo) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ToggleContractRepo struct{ mock.Mock }

func (m *ToggleContractRepo) Add(ctx context.Context, c *contract.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ToggleContractRepo) Update(ctx context.Context, c *contract.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ToggleContractRepo) Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.Contract), args.Error(1)
}

func (m *ToggleContractRepo) GetAll(ctx context.Context) ([]*contract.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contract.Contract), args.Error(1)
}

type ToggleUnitOfWork struct{ mock.Mock }

func (m *ToggleUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ToggleUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ToggleUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ToggleUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *ToggleUnitOfWork) ContractRepository() ports.ContractRepository {
	args := m.Called()
	return args.Get(0).(ports.ContractRepository)
}

type ToggleUoWFactory struct{ mock.Mock }

func (m *ToggleUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func toggleTestFixture(t *testing.T) (*order.Order, *contract.Contract) {
	t.Helper()

	contractID := kernel.NewUUID()
	testContract, err := contract.NewContract(
		contractID,
		"maria@example.com",
		[]kernel.LineItem{{Name: "Álbum Premium"}},
		nil,
	)
	require.NoError(t, err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		"Maria Silva",
		"maria@example.com",
		time.Now(),
		[]kernel.LineItem{{Name: "Álbum Premium"}},
		&contractID,
		nil,
		order.Unknown,
	)
	require.NoError(t, err)

	return testOrder, testContract
}

func TestToggleTaskCommandHandler_Handle_StoredOrderWithContractSync(t *testing.T) {
	ctx := t.Context()
	testOrder, testContract := toggleTestFixture(t)
	cmd, err := commands.NewToggleTaskCommand(testOrder.ID(), false, 0, 0, true)
	require.NoError(t, err)

	orderRepo := new(ToggleOrderRepo)
	contractRepo := new(ToggleContractRepo)
	syncContractRepo := new(ToggleContractRepo)
	uow := new(ToggleUnitOfWork)
	syncUow := new(ToggleUnitOfWork)
	factory := new(ToggleUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ContractRepository").Return(contractRepo).Once(),
		contractRepo.On("GetAll", ctx).Return([]*contract.Contract{testContract}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		// contract sync runs in its own unit of work after the order commit
		factory.On("Create").Return(syncUow).Once(),
		syncUow.On("Begin", ctx).Return(nil).Once(),
		syncUow.On("ContractRepository").Return(syncContractRepo).Once(),
		syncContractRepo.On("Get", ctx, testContract.ID()).Return(testContract, nil).Once(),
		syncContractRepo.On("Update", ctx, testContract).Return(nil).Once(),
		syncUow.On("Commit", ctx).Return(nil).Once(),
		syncUow.On("Rollback", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewToggleTaskCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	syncUow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	contractRepo.AssertExpectations(t)
	syncContractRepo.AssertExpectations(t)

	// the synthesized delivery task is flipped on the order side
	wf := testOrder.Workflow()
	require.Len(t, wf, 1)
	require.Len(t, wf[0].Tasks, 1)
	assert.Equal(t, workflow.DeliveryTaskTitle("Álbum Premium"), wf[0].Tasks[0].Title)
	assert.True(t, wf[0].Tasks[0].Done)

	// and mirrored into the contract's checklist copy
	contractWf := testContract.Workflow()
	require.Len(t, contractWf, 1)
	require.Len(t, contractWf[0].Tasks, 1)
	assert.True(t, contractWf[0].Tasks[0].Done)
}

func TestToggleTaskCommandHandler_Handle_VirtualRowSkipsOrderWrite(t *testing.T) {
	ctx := t.Context()
	_, testContract := toggleTestFixture(t)
	cmd, err := commands.NewToggleTaskCommand(testContract.ID(), true, 0, 0, true)
	require.NoError(t, err)

	contractRepo := new(ToggleContractRepo)
	syncContractRepo := new(ToggleContractRepo)
	uow := new(ToggleUnitOfWork)
	syncUow := new(ToggleUnitOfWork)
	factory := new(ToggleUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContractRepository").Return(contractRepo).Once(),
		contractRepo.On("Get", ctx, testContract.ID()).Return(testContract, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		factory.On("Create").Return(syncUow).Once(),
		syncUow.On("Begin", ctx).Return(nil).Once(),
		syncUow.On("ContractRepository").Return(syncContractRepo).Once(),
		syncContractRepo.On("Get", ctx, testContract.ID()).Return(testContract, nil).Once(),
		syncContractRepo.On("Update", ctx, testContract).Return(nil).Once(),
		syncUow.On("Commit", ctx).Return(nil).Once(),
		syncUow.On("Rollback", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewToggleTaskCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	syncUow.AssertExpectations(t)
	contractRepo.AssertExpectations(t)
	syncContractRepo.AssertExpectations(t)

	contractWf := testContract.Workflow()
	require.Len(t, contractWf, 1)
	require.Len(t, contractWf[0].Tasks, 1)
	assert.True(t, contractWf[0].Tasks[0].Done)
}

func TestToggleTaskCommandHandler_Handle_NoContractNoSync(t *testing.T) {
	ctx := t.Context()

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		"Walk-in Customer",
		"nobody@example.com",
		time.Now(),
		[]kernel.LineItem{{Name: "Mini Session"}},
		nil,
		nil,
		order.Unknown,
	)
	require.NoError(t, err)

	cmd, err := commands.NewToggleTaskCommand(testOrder.ID(), false, 0, 0, true)
	require.NoError(t, err)

	orderRepo := new(ToggleOrderRepo)
	contractRepo := new(ToggleContractRepo)
	uow := new(ToggleUnitOfWork)
	factory := new(ToggleUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ContractRepository").Return(contractRepo).Once(),
		contractRepo.On("GetAll", ctx).Return([]*contract.Contract{}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewToggleTaskCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	contractRepo.AssertExpectations(t)
}

func TestToggleTaskCommandHandler_Handle_SyncFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	testOrder, testContract := toggleTestFixture(t)
	cmd, err := commands.NewToggleTaskCommand(testOrder.ID(), false, 0, 0, true)
	require.NoError(t, err)

	orderRepo := new(ToggleOrderRepo)
	contractRepo := new(ToggleContractRepo)
	syncContractRepo := new(ToggleContractRepo)
	uow := new(ToggleUnitOfWork)
	syncUow := new(ToggleUnitOfWork)
	factory := new(ToggleUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ContractRepository").Return(contractRepo).Once(),
		contractRepo.On("GetAll", ctx).Return([]*contract.Contract{testContract}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		factory.On("Create").Return(syncUow).Once(),
		syncUow.On("Begin", ctx).Return(nil).Once(),
		syncUow.On("ContractRepository").Return(syncContractRepo).Once(),
		syncContractRepo.On("Get", ctx, testContract.ID()).Return(testContract, nil).Once(),
		syncContractRepo.On("Update", ctx, testContract).Return(errors.New("contract update error")).Once(),
		syncUow.On("Rollback", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewToggleTaskCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	// the order write already committed; the failed sync must not surface
	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	syncUow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	contractRepo.AssertExpectations(t)
	syncContractRepo.AssertExpectations(t)
}

func TestToggleTaskCommandHandler_Handle_TaskIndexOutOfRange(t *testing.T) {
	ctx := t.Context()
	testOrder, testContract := toggleTestFixture(t)
	cmd, err := commands.NewToggleTaskCommand(testOrder.ID(), false, 0, 5, true)
	require.NoError(t, err)

	orderRepo := new(ToggleOrderRepo)
	contractRepo := new(ToggleContractRepo)
	uow := new(ToggleUnitOfWork)
	factory := new(ToggleUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ContractRepository").Return(contractRepo).Once(),
		contractRepo.On("GetAll", ctx).Return([]*contract.Contract{testContract}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewToggleTaskCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	contractRepo.AssertExpectations(t)
}

func TestToggleTaskCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ToggleTaskCommand{} // not constructed properly
	factory := new(ToggleUoWFactory)

	handler := commands.NewToggleTaskCommandHandler(factory, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewToggleTaskCommand constructor")
}

func TestToggleTaskCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	testOrder, _ := toggleTestFixture(t)
	cmd, err := commands.NewToggleTaskCommand(testOrder.ID(), false, 0, 0, true)
	require.NoError(t, err)

	uow := new(ToggleUnitOfWork)
	factory := new(ToggleUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewToggleTaskCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin error")
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
}
