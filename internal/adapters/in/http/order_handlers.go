package http

import (
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/staff/orders.
// Optional query parameters: status, day (YYYY-MM-DD), search.
func (s *Server) GetOrders(ctx echo.Context) error {
	status := order.StatusUnknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+raw)
		}
		status = parsed
	}

	var day time.Time
	if raw := ctx.QueryParam("day"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(ctx, "Invalid day filter, expected YYYY-MM-DD")
		}
		day = parsed
	}

	query, err := queries.NewGetOrdersQuery(status, day, ctx.QueryParam("search"))
	if err != nil {
		return badRequest(ctx, "Invalid order filters: "+err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, summary := range orders {
		response[i] = OrderSummary{
			ID:            summary.ID.String(),
			Number:        summary.Number,
			CustomerName:  summary.CustomerName,
			TotalCents:    summary.TotalCents,
			ItemCount:     summary.ItemCount,
			Status:        summary.Status,
			PaymentMethod: summary.PaymentMethod,
			PaymentStatus: summary.PaymentStatus,
			CreatedAt:     summary.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/v1/staff/orders/:orderID.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order query: "+err.Error())
	}

	view, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := OrderDetailResponse{
		ID:            view.ID.String(),
		Number:        view.Number,
		CustomerID:    view.CustomerID.String(),
		Items:         make([]OrderLine, len(view.Items)),
		TotalCents:    view.TotalCents,
		Status:        view.Status,
		PaymentMethod: view.PaymentMethod,
		PaymentStatus: view.PaymentStatus,
		Address: AddressResponse{
			FullName:     view.Address.FullName,
			Street:       view.Address.Street,
			City:         view.Address.City,
			PostalCode:   view.Address.PostalCode,
			Phone:        view.Address.Phone,
			Instructions: view.Address.Instructions,
		},
		CreatedAt:           view.CreatedAt,
		AllowedNextStatuses: view.AllowedNextStatuses,
	}
	for i, line := range view.Items {
		response.Items[i] = OrderLine{
			MenuItemID:          line.MenuItemID.String(),
			Name:                line.Name,
			UnitPriceCents:      line.UnitPriceCents,
			Quantity:            line.Quantity,
			SpecialInstructions: line.SpecialInstructions,
			SubtotalCents:       line.SubtotalCents,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/staff/orders/:orderID/status.
// The request carries the status the caller last saw; a mismatch with the
// stored status is answered with 409 so the staff board can refresh.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	next, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+request.Status)
	}
	expected, err := order.StatusFromString(request.ExpectedStatus)
	if err != nil {
		return badRequest(ctx, "Invalid expected status: "+request.ExpectedStatus)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, next, expected)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDashboardStats handles GET /api/v1/staff/dashboard.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardStatsResponse{
		OrdersToday:       stats.OrdersToday,
		RevenueTodayCents: stats.RevenueTodayCents,
		ActiveOrders:      stats.ActiveOrders,
		CountsByStatus:    stats.CountsByStatus,
	})
}
