package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSelectPaymentMethodCommandHandler_Handle_RecordsCardChoice(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewSelectPaymentMethodCommand(customerID, order.PaymentMethodCard, testCardDetails())
	require.NoError(t, err)

	session := sessionAtPayment(t, customerID, order.PaymentMethodNone)

	sessionRepo := new(MockSessionRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CheckoutSessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("GetByCustomer", mock.Anything, customerID).Return(session, nil).Once(),
		sessionRepo.On("Update", mock.Anything, session).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSelectPaymentMethodCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, checkout.StepPayment, session.Step(), "selecting a method does not leave the payment step")
	assert.Equal(t, order.PaymentMethodCard, session.PaymentMethod())
	assert.Equal(t, testCardDetails(), session.CardDetails())
	sessionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSelectPaymentMethodCommandHandler_Handle_CashDropsCardDetails(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewSelectPaymentMethodCommand(customerID, order.PaymentMethodCash, testCardDetails())
	require.NoError(t, err)

	session := sessionAtPayment(t, customerID, order.PaymentMethodNone)

	sessionRepo := new(MockSessionRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CheckoutSessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("GetByCustomer", mock.Anything, customerID).Return(session, nil).Once(),
		sessionRepo.On("Update", mock.Anything, session).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSelectPaymentMethodCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PaymentMethodCash, session.PaymentMethod())
	assert.True(t, session.CardDetails().IsZero())
	uow.AssertExpectations(t)
}

func TestSelectPaymentMethodCommandHandler_Handle_NoSession(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewSelectPaymentMethodCommand(customerID, order.PaymentMethodCash, checkout.CardDetails{})
	require.NoError(t, err)

	sessionRepo := new(MockSessionRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CheckoutSessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("GetByCustomer", mock.Anything, customerID).
			Return(nil, errs.NewObjectNotFoundError("customerID", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSelectPaymentMethodCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestNewSelectPaymentMethodCommand_NoneRejected(t *testing.T) {
	_, err := commands.NewSelectPaymentMethodCommand(kernel.NewUUID(), order.PaymentMethodNone, checkout.CardDetails{})
	require.Error(t, err)
}
