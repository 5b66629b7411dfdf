package commands

import (
	"context"
)

// ChangeOrderStatusCommandHandler persists a manual status override.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status overrides.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status override command.
// Loads the order, records the new stored status and persists it within a
// single transaction.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) error {
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

	ordersRepo := uow.OrderRepository()

	target, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = target.SetStoredStatus(command.Status()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
