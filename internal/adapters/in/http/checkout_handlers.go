package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetCheckoutSession handles GET /api/v1/customers/:customerID/checkout.
// A customer who never started checkout gets a view sitting on the cart step.
func (s *Server) GetCheckoutSession(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	query, err := queries.NewGetCheckoutSessionQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid checkout query: "+err.Error())
	}

	view, err := s.getCheckoutSessionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := CheckoutSessionResponse{
		Step:            view.Step,
		PaymentMethod:   view.PaymentMethod,
		CardholderName:  view.CardholderName,
		OrderTotalCents: view.OrderTotalCents,
	}
	if view.Address != nil {
		response.Address = &AddressResponse{
			FullName:     view.Address.FullName,
			Street:       view.Address.Street,
			City:         view.Address.City,
			PostalCode:   view.Address.PostalCode,
			Phone:        view.Address.Phone,
			Instructions: view.Address.Instructions,
		}
	}
	if view.OrderID != nil {
		response.OrderID = view.OrderID.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// BeginCheckout handles POST /api/v1/customers/:customerID/checkout.
// Requires a non-empty cart.
func (s *Server) BeginCheckout(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	cmd, err := commands.NewBeginCheckoutCommand(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid checkout request: "+err.Error())
	}

	if err := s.beginCheckoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitShippingDetails handles PUT /api/v1/customers/:customerID/checkout/shipping.
func (s *Server) SubmitShippingDetails(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	var request ShippingDetailsRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitShippingDetailsCommand(
		customerID,
		request.FullName,
		request.Street,
		request.City,
		request.PostalCode,
		request.Phone,
		request.Instructions,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipping details: "+err.Error())
	}

	if err := s.submitShippingDetailsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SelectPaymentMethod handles PUT /api/v1/customers/:customerID/checkout/payment.
// Card details are stored as entered and validated at order placement.
func (s *Server) SelectPaymentMethod(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	var request SelectPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, err := order.PaymentMethodFromString(request.Method)
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+request.Method)
	}

	cmd, err := commands.NewSelectPaymentMethodCommand(customerID, method, checkout.CardDetails{
		Number: request.CardNumber,
		Expiry: request.CardExpiry,
		CVV:    request.CardCVV,
		Name:   request.CardName,
	})
	if err != nil {
		return badRequest(ctx, "Invalid payment selection: "+err.Error())
	}

	if err := s.selectPaymentMethodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NavigateBack handles POST /api/v1/customers/:customerID/checkout/back.
// Moving to an earlier step keeps the data already entered.
func (s *Server) NavigateBack(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	var request NavigateBackRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := checkout.StepFromString(request.Target)
	if err != nil {
		return badRequest(ctx, "Invalid checkout step: "+request.Target)
	}

	cmd, err := commands.NewNavigateBackCommand(customerID, target)
	if err != nil {
		return badRequest(ctx, "Invalid navigation request: "+err.Error())
	}

	if err := s.navigateBackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResetCheckout handles DELETE /api/v1/customers/:customerID/checkout.
func (s *Server) ResetCheckout(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	cmd, err := commands.NewResetCheckoutCommand(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid reset request: "+err.Error())
	}

	if err := s.resetCheckoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/customers/:customerID/checkout/order.
// On success the cart is emptied and the checkout moves to confirmation.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	cmd, err := commands.NewPlaceOrderCommand(customerID, kernel.NewUUID())
	if err != nil {
		return badRequest(ctx, "Invalid order request: "+err.Error())
	}

	result, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderConfirmationResponse{
		OrderID:           result.OrderID.String(),
		OrderNumber:       result.OrderNumber,
		TotalCents:        result.Total.Cents(),
		Message:           result.Message,
		EstimatedDelivery: result.EstimatedDelivery,
	})
}
