package commands

import (
	"context"

	"storefront/internal/core/domain/services"
)

// LinkContractsCommandHandler attaches unlinked orders to contracts whose
// client email matches the order's customer email. The match uses normalized
// emails, so casing and surrounding whitespace do not matter.
type LinkContractsCommandHandler struct {
	uowFactory UoWFactory
}

// NewLinkContractsCommandHandler creates a handler for contract linking.
// Requires a UoWFactory providing order and contract repositories.
func NewLinkContractsCommandHandler(uowFactory UoWFactory) LinkContractsCommandHandler {
	return LinkContractsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the linking command.
// Loads every unlinked order and every contract, records a contract link on
// each order whose customer email resolves to a contract, and persists the
// changed orders in a single transaction.
func (h LinkContractsCommandHandler) Handle(ctx context.Context, command LinkContractsCommand) error {
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

	unlinked, err := ordersRepo.GetAllUnlinked(ctx)
	if err != nil {
		return err
	}
	if len(unlinked) == 0 {
		return nil
	}

	contracts, err := uow.ContractRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	index := services.NewContractIndex(contracts)

	for _, target := range unlinked {
		matched := index.ResolveByEmail(target.CustomerEmail())
		if matched == nil {
			continue
		}

		if err = target.LinkContract(matched.ID()); err != nil {
			return err
		}

		if err = ordersRepo.Update(ctx, target); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
