package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrLinkContractsCommandIsNotConstructed = errors.New(
	"LinkContractsCommand must be created via NewLinkContractsCommand constructor",
)

// LinkContractsCommand triggers the automatic linking of unlinked orders to
// contracts by matching normalized client emails. This is a parameterless
// command run periodically by the background job manager.
//
// Example:
//
//	cmd := NewLinkContractsCommand()
//	handler := NewLinkContractsCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Contract linking failed: %v", err)
//	}
type LinkContractsCommand struct {
	guard guard.ConstructorGuard
}

// NewLinkContractsCommand creates a new command to trigger contract linking.
func NewLinkContractsCommand() LinkContractsCommand {
	return LinkContractsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrLinkContractsCommandIsNotConstructed if validation fails.
func (c *LinkContractsCommand) Validate() error {
	return c.guard.Validate(
		ErrLinkContractsCommandIsNotConstructed,
	)
}
