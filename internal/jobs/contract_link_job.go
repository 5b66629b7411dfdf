package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ContractLinkJob manages the scheduled linking of orders to contracts.
// Runs every minute to attach unlinked orders to the contract whose client
// email matches.
type ContractLinkJob struct {
	handler commands.LinkContractsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewContractLinkJob creates a new job for linking orders to contracts.
// Uses LinkContractsCommandHandler to process the batch every minute.
func NewContractLinkJob(handler commands.LinkContractsCommandHandler, logger *slog.Logger) *ContractLinkJob {
	return &ContractLinkJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "contract_link_job"),
	}
}

// Start begins the contract link job to run every minute.
func (j *ContractLinkJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewLinkContractsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Contract link job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Contract link job started (running every minute)")
	return nil
}

// Stop stops the contract link job.
func (j *ContractLinkJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Contract link job stopped")
}
