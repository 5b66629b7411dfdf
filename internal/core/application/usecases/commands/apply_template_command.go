package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrApplyTemplateCommandIsNotConstructed = errors.New(
	"ApplyTemplateCommand must be created via NewApplyTemplateCommand constructor",
)

// ApplyTemplateCommand represents a request to replace an order's checklist
// with a fresh instance of a workflow template. Any existing checklist on
// the order is overwritten; all tasks start unchecked.
type ApplyTemplateCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	templateID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApplyTemplateCommand creates a command to apply a template to an order.
// Validates that both identifiers are valid UUIDs.
func NewApplyTemplateCommand(orderID kernel.UUID, templateID kernel.UUID) (ApplyTemplateCommand, error) {
	command := ApplyTemplateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTemplateID(templateID),
	); err != nil {
		return ApplyTemplateCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApplyTemplateCommandIsNotConstructed if validation fails.
func (c ApplyTemplateCommand) Validate() error {
	return c.guard.Validate(ErrApplyTemplateCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the checklist.
func (c ApplyTemplateCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TemplateID returns the identifier of the template to instantiate.
func (c ApplyTemplateCommand) TemplateID() kernel.UUID {
	return c.templateID
}

func (c *ApplyTemplateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyTemplateCommand) setTemplateID(templateID kernel.UUID) error {
	if err := templateID.Validate(); err != nil {
		return err
	}

	c.templateID = templateID
	return nil
}
