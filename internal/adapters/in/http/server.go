// Package http exposes the storefront over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StaffRoleHeader carries the caller's role. Staff endpoints require it
// to be set to "staff"; there is no customer authentication in this service.
const StaffRoleHeader = "X-Staff-Role"

// Server handles the storefront's HTTP requests.
type Server struct {
	// Command handlers
	addCartItemHandler            commands.AddCartItemCommandHandler
	removeCartItemHandler         commands.RemoveCartItemCommandHandler
	changeCartItemQuantityHandler commands.ChangeCartItemQuantityCommandHandler
	clearCartHandler              commands.ClearCartCommandHandler
	beginCheckoutHandler          commands.BeginCheckoutCommandHandler
	submitShippingDetailsHandler  commands.SubmitShippingDetailsCommandHandler
	selectPaymentMethodHandler    commands.SelectPaymentMethodCommandHandler
	navigateBackHandler           commands.NavigateBackCommandHandler
	resetCheckoutHandler          commands.ResetCheckoutCommandHandler
	placeOrderHandler             commands.PlaceOrderCommandHandler
	updateOrderStatusHandler      commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getCartHandler            queries.GetCartQueryHandler
	getCheckoutSessionHandler queries.GetCheckoutSessionQueryHandler
	getOrdersHandler          queries.GetOrdersQueryHandler
	getOrderByIDHandler       queries.GetOrderByIDQueryHandler
	getDashboardStatsHandler  queries.GetDashboardStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	changeCartItemQuantityHandler commands.ChangeCartItemQuantityCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	beginCheckoutHandler commands.BeginCheckoutCommandHandler,
	submitShippingDetailsHandler commands.SubmitShippingDetailsCommandHandler,
	selectPaymentMethodHandler commands.SelectPaymentMethodCommandHandler,
	navigateBackHandler commands.NavigateBackCommandHandler,
	resetCheckoutHandler commands.ResetCheckoutCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getCheckoutSessionHandler queries.GetCheckoutSessionQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
) *Server {
	return &Server{
		addCartItemHandler:            addCartItemHandler,
		removeCartItemHandler:         removeCartItemHandler,
		changeCartItemQuantityHandler: changeCartItemQuantityHandler,
		clearCartHandler:              clearCartHandler,
		beginCheckoutHandler:          beginCheckoutHandler,
		submitShippingDetailsHandler:  submitShippingDetailsHandler,
		selectPaymentMethodHandler:    selectPaymentMethodHandler,
		navigateBackHandler:           navigateBackHandler,
		resetCheckoutHandler:          resetCheckoutHandler,
		placeOrderHandler:             placeOrderHandler,
		updateOrderStatusHandler:      updateOrderStatusHandler,
		getCartHandler:                getCartHandler,
		getCheckoutSessionHandler:     getCheckoutSessionHandler,
		getOrdersHandler:              getOrdersHandler,
		getOrderByIDHandler:           getOrderByIDHandler,
		getDashboardStatsHandler:      getDashboardStatsHandler,
	}
}

// RegisterRoutes attaches all storefront routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	customer := api.Group("/customers/:customerID")
	customer.GET("/cart", s.GetCart)
	customer.POST("/cart/items", s.AddCartItem)
	customer.PATCH("/cart/items/:itemID", s.ChangeCartItemQuantity)
	customer.DELETE("/cart/items/:itemID", s.RemoveCartItem)
	customer.DELETE("/cart", s.ClearCart)

	customer.GET("/checkout", s.GetCheckoutSession)
	customer.POST("/checkout", s.BeginCheckout)
	customer.PUT("/checkout/shipping", s.SubmitShippingDetails)
	customer.PUT("/checkout/payment", s.SelectPaymentMethod)
	customer.POST("/checkout/back", s.NavigateBack)
	customer.DELETE("/checkout", s.ResetCheckout)
	customer.POST("/checkout/order", s.PlaceOrder)

	staff := api.Group("/staff", requireStaffRole)
	staff.GET("/orders", s.GetOrders)
	staff.GET("/orders/:orderID", s.GetOrderByID)
	staff.PATCH("/orders/:orderID/status", s.UpdateOrderStatus)
	staff.GET("/dashboard", s.GetDashboardStats)
}

func requireStaffRole(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if ctx.Request().Header.Get(StaffRoleHeader) != "staff" {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "Staff role required",
			})
		}
		return next(ctx)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application and domain errors to HTTP statuses.
func domainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, ports.ErrPaymentDeclined):
		status = http.StatusPaymentRequired
	case errors.Is(err, ports.ErrSubmissionFailed):
		status = http.StatusBadGateway
	case errors.Is(err, checkout.ErrCartIsEmpty),
		errors.Is(err, checkout.ErrInvalidStepTransition),
		errors.Is(err, checkout.ErrShippingAddressIsMissing),
		errors.Is(err, checkout.ErrPaymentMethodIsMissing),
		errors.Is(err, commands.ErrInvalidCardDetails),
		errors.Is(err, order.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
