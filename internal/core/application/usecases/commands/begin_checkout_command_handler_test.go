package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBeginCheckoutCommandHandler_Handle_CreatesSessionAndAdvances(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewBeginCheckoutCommand(customerID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	sessionRepo := new(MockSessionRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", mock.Anything, customerID).Return(cartWithItem(t, customerID), nil).Once(),
		uow.On("CheckoutSessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("GetByCustomer", mock.Anything, customerID).
			Return(nil, errs.NewObjectNotFoundError("customerID", customerID)).Once(),
		sessionRepo.On("Add", mock.Anything, mock.AnythingOfType("*checkout.Session")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBeginCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	saved := sessionRepo.Calls[1].Arguments.Get(1).(*checkout.Session)
	assert.Equal(t, checkout.StepDetails, saved.Step())
	cartRepo.AssertExpectations(t)
	sessionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestBeginCheckoutCommandHandler_Handle_NoCartMeansEmpty(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewBeginCheckoutCommand(customerID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", mock.Anything, customerID).
			Return(nil, errs.NewObjectNotFoundError("customerID", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBeginCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, checkout.ErrCartIsEmpty)
	uow.AssertExpectations(t)
}

func TestBeginCheckoutCommandHandler_Handle_EmptyCartRejected(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewBeginCheckoutCommand(customerID)
	require.NoError(t, err)

	emptyCart, err := cart.NewCart(customerID)
	require.NoError(t, err)
	session, err := checkout.NewSession(customerID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	sessionRepo := new(MockSessionRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", mock.Anything, customerID).Return(emptyCart, nil).Once(),
		uow.On("CheckoutSessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("GetByCustomer", mock.Anything, customerID).Return(session, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBeginCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, checkout.ErrCartIsEmpty)
	assert.Equal(t, checkout.StepCart, session.Step())
	uow.AssertExpectations(t)
}
