package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrToggleTaskCommandIsNotConstructed = errors.New(
		"ToggleTaskCommand must be created via NewToggleTaskCommand constructor",
	)
	ErrCategoryIndexIsInvalid = errors.New("category index must not be negative")
	ErrTaskIndexIsInvalid     = errors.New("task index must not be negative")
)

// ToggleTaskCommand represents a request to flip a single checklist task on
// an order. The target task is addressed positionally within the order's
// effective checklist, the same way the client renders it.
//
// Virtual marks placeholder rows that are backed by a contract instead of a
// stored order; for those the order identifier is the contract identifier
// and no order record is written.
//
// Example:
//
//	cmd, err := NewToggleTaskCommand(orderID, false, 0, 2, true)
//	if err != nil {
//	    return fmt.Errorf("invalid task toggle: %w", err)
//	}
//
//	handler := NewToggleTaskCommandHandler(uowFactory, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to toggle task: %w", err)
//	}
type ToggleTaskCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	virtual       bool
	categoryIndex int
	taskIndex     int
	done          bool

	guard guard.ConstructorGuard
}

// NewToggleTaskCommand creates a command to flip a checklist task.
// Validates that the order ID is valid and both indexes are non-negative.
// Upper bounds are checked against the actual checklist by the handler.
func NewToggleTaskCommand(
	orderID kernel.UUID, virtual bool, categoryIndex int, taskIndex int, done bool,
) (ToggleTaskCommand, error) {
	command := ToggleTaskCommand{
		virtual: virtual,
		done:    done,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCategoryIndex(categoryIndex),
		command.setTaskIndex(taskIndex),
	); err != nil {
		return ToggleTaskCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrToggleTaskCommandIsNotConstructed if validation fails.
func (c ToggleTaskCommand) Validate() error {
	return c.guard.Validate(ErrToggleTaskCommandIsNotConstructed)
}

// OrderID returns the identifier of the targeted row. For virtual rows this
// is the backing contract's identifier.
func (c ToggleTaskCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Virtual reports whether the targeted row is a contract-backed placeholder.
func (c ToggleTaskCommand) Virtual() bool {
	return c.virtual
}

// CategoryIndex returns the position of the category within the checklist.
func (c ToggleTaskCommand) CategoryIndex() int {
	return c.categoryIndex
}

// TaskIndex returns the position of the task within its category.
func (c ToggleTaskCommand) TaskIndex() int {
	return c.taskIndex
}

// Done returns the new completion flag for the task.
func (c ToggleTaskCommand) Done() bool {
	return c.done
}

func (c *ToggleTaskCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ToggleTaskCommand) setCategoryIndex(categoryIndex int) error {
	if categoryIndex < 0 {
		return ErrCategoryIndexIsInvalid
	}

	c.categoryIndex = categoryIndex
	return nil
}

func (c *ToggleTaskCommand) setTaskIndex(taskIndex int) error {
	if taskIndex < 0 {
		return ErrTaskIndexIsInvalid
	}

	c.taskIndex = taskIndex
	return nil
}
