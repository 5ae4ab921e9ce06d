package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartSweepJob empties carts that have not been touched for longer than the
// configured time-to-live. Runs every minute.
type CartSweepJob struct {
	handler commands.RemoveAbandonedCartsCommandHandler
	cartTTL time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCartSweepJob creates the abandoned cart sweep job.
// cartTTL is how long a cart may sit untouched before it is emptied.
func NewCartSweepJob(
	handler commands.RemoveAbandonedCartsCommandHandler,
	cartTTL time.Duration,
	logger *slog.Logger,
) *CartSweepJob {
	return &CartSweepJob{
		handler: handler,
		cartTTL: cartTTL,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cart_sweep_job"),
	}
}

// Start begins the sweep job to run every minute.
func (j *CartSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRemoveAbandonedCartsCommand(time.Now().Add(-j.cartTTL))
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart sweep job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Cart sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart sweep job started (running every minute)", "cartTTL", j.cartTTL)
	return nil
}

// Stop stops the sweep job.
func (j *CartSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart sweep job stopped")
}
