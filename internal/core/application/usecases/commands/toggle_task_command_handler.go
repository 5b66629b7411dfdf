package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/contract"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/workflow"
	"storefront/internal/core/domain/services"
)

// ToggleTaskCommandHandler persists a single checklist task flip and keeps
// the contract's checklist copy in sync.
//
// The write path is deliberately split into two transactions. The order-side
// write commits first; the contract-side sync then runs in its own unit of
// work, and a failure there is logged at warn level and swallowed. The two
// checklist copies are eventually consistent, never atomically updated.
//
// Example:
//
//	handler := NewToggleTaskCommandHandler(uowFactory, slog.Default())
//	cmd, _ := NewToggleTaskCommand(orderID, false, 0, 2, true)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Toggle failed: %v", err)
//	}
type ToggleTaskCommandHandler struct {
	uowFactory  UoWFactory
	fulfillment services.Fulfillment
	logger      *slog.Logger
}

// NewToggleTaskCommandHandler creates a handler for checklist task toggles.
// Requires a UoWFactory providing order and contract repositories, and a
// logger for reporting swallowed contract-sync failures.
func NewToggleTaskCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ToggleTaskCommandHandler {
	return ToggleTaskCommandHandler{
		uowFactory:  uowFactory,
		fulfillment: services.NewFulfillment(),
		logger:      logger,
	}
}

// Handle processes the task toggle command.
// Rebuilds the row's effective checklist (stored checklist plus synthesized
// delivery tasks for the current display items), flips the targeted task,
// writes the order record unless the row is virtual, then syncs the delivery
// category into the linked contract's checklist copy.
func (h ToggleTaskCommandHandler) Handle(ctx context.Context, command ToggleTaskCommand) error {
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

	target, linked, err := h.loadTarget(ctx, uow, command)
	if err != nil {
		return err
	}

	names := h.fulfillment.DisplayNames(target, linked)
	effective := workflow.EnsureDeliveryTasks(target.Workflow(), names)

	updated, err := workflow.Toggle(effective, command.CategoryIndex(), command.TaskIndex(), command.Done())
	if err != nil {
		return err
	}

	if !target.IsVirtual() {
		target.SetWorkflow(updated)
		if err = uow.OrderRepository().Update(ctx, target); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if linked != nil {
		h.syncContract(ctx, linked.ID(), updated, names)
	}

	return nil
}

// loadTarget resolves the toggled row and its linked contract. Virtual rows
// are rebuilt from the backing contract; stored rows are read from the order
// repository and matched against contracts by link or client email.
func (h ToggleTaskCommandHandler) loadTarget(
	ctx context.Context, uow UoW, command ToggleTaskCommand,
) (*order.Order, *contract.Contract, error) {
	if command.Virtual() {
		backing, err := uow.ContractRepository().Get(ctx, command.OrderID())
		if err != nil {
			return nil, nil, err
		}

		target, err := services.VirtualOrderFromContract(backing)
		if err != nil {
			return nil, nil, err
		}

		return target, backing, nil
	}

	target, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return nil, nil, err
	}

	contracts, err := uow.ContractRepository().GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	return target, services.NewContractIndex(contracts).Resolve(target), nil
}

// syncContract mirrors the delivery category's done flags into the contract's
// checklist copy inside a fresh transaction. Any failure here is logged and
// swallowed so the already committed order write stands.
func (h ToggleTaskCommandHandler) syncContract(
	ctx context.Context, contractID kernel.UUID, updated []workflow.Category, names []string,
) {
	uow := h.uowFactory.Create()

	err := func() error {
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		repo := uow.ContractRepository()

		linked, err := repo.Get(ctx, contractID)
		if err != nil {
			return err
		}

		merged := workflow.EnsureDeliveryTasks(linked.Workflow(), names)
		merged = workflow.MergeDeliveryDone(merged, updated)
		linked.SetWorkflow(merged)

		if err = repo.Update(ctx, linked); err != nil {
			return err
		}

		return uow.Commit(ctx)
	}()
	if err != nil {
		h.logger.WarnContext(ctx, "contract checklist sync failed",
			slog.String("contract_id", contractID.String()),
			slog.Any("error", err),
		)
	}
}
