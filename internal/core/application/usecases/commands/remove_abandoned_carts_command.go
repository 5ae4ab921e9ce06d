package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/guard"
)

var (
	ErrRemoveAbandonedCartsCommandIsNotConstructed = errors.New(
		"RemoveAbandonedCartsCommand must be created via NewRemoveAbandonedCartsCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff time is required")
)

// RemoveAbandonedCartsCommand represents a request to empty carts that have not
// been touched since the cutoff. Issued periodically by the sweep job.
type RemoveAbandonedCartsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewRemoveAbandonedCartsCommand creates a command to sweep carts idle since cutoff.
func NewRemoveAbandonedCartsCommand(cutoff time.Time) (RemoveAbandonedCartsCommand, error) {
	cmd := RemoveAbandonedCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoff(cutoff); err != nil {
		return RemoveAbandonedCartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAbandonedCartsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAbandonedCartsCommandIsNotConstructed)
}

// Cutoff returns the idle threshold: carts untouched since before it are swept.
func (c RemoveAbandonedCartsCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *RemoveAbandonedCartsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
