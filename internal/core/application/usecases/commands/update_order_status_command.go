package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a staff request to move an order forward
// in its lifecycle. The expected status is the one the staff member was looking
// at when they clicked: if the order has moved on since, the update is rejected
// instead of silently overwriting the newer state.
//
// Example:
//
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.StatusPreparing, order.StatusConfirmed)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrVersionIsInvalid) {
//	    // Someone else already changed the order; refresh and retry
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	next     order.Status
	expected order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Both the target and the expected current status must be concrete statuses.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	next order.Status,
	expected order.Status,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNext(next),
		cmd.setExpected(expected),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Next returns the status to move the order to.
func (c UpdateOrderStatusCommand) Next() order.Status {
	return c.next
}

// Expected returns the status the caller believes the order is currently in.
func (c UpdateOrderStatusCommand) Expected() order.Status {
	return c.expected
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNext(next order.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}

func (c *UpdateOrderStatusCommand) setExpected(expected order.Status) error {
	if err := expected.Validate(); err != nil {
		return err
	}

	c.expected = expected
	return nil
}
