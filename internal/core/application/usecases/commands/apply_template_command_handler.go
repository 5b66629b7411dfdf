package commands

import (
	"context"
)

// ApplyTemplateCommandHandler replaces an order's checklist with a fresh
// instance of a stored workflow template. The instantiation assigns new task
// identifiers where the template omits them and resets all done flags.
type ApplyTemplateCommandHandler struct {
	uowFactory TemplateUoWFactory
}

// NewApplyTemplateCommandHandler creates a handler for template application.
// Requires a TemplateUoWFactory providing order and template repositories.
func NewApplyTemplateCommandHandler(uowFactory TemplateUoWFactory) ApplyTemplateCommandHandler {
	return ApplyTemplateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the template application command.
// Loads the template and the order, overwrites the order's checklist with a
// fresh template instance, and persists the order in a single transaction.
func (h ApplyTemplateCommandHandler) Handle(ctx context.Context, command ApplyTemplateCommand) error {
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

	template, err := uow.TemplateRepository().Get(ctx, command.TemplateID())
	if err != nil {
		return err
	}

	ordersRepo := uow.OrderRepository()

	target, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	target.SetWorkflow(template.Instantiate())

	if err = ordersRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
