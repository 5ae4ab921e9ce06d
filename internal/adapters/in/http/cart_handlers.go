package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /api/v1/customers/:customerID/cart.
// A customer without a cart gets an empty view, not a 404.
func (s *Server) GetCart(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	query, err := queries.NewGetCartQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid cart query: "+err.Error())
	}

	view, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := CartResponse{
		Items:      make([]CartLine, len(view.Items)),
		TotalCents: view.TotalCents,
		ItemCount:  view.ItemCount,
	}
	for i, line := range view.Items {
		response.Items[i] = CartLine{
			ID:                  line.ID.String(),
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

// AddCartItem handles POST /api/v1/customers/:customerID/cart/items.
// Adding an item a second time with the same special instructions merges
// into the existing line.
func (s *Server) AddCartItem(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	var request AddCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(request.MenuItemID)
	if err != nil {
		return badRequest(ctx, "Invalid menu item identifier")
	}

	unitPrice, err := kernel.MoneyFromCents(request.UnitPriceCents)
	if err != nil {
		return badRequest(ctx, "Invalid unit price: "+err.Error())
	}

	cmd, err := commands.NewAddCartItemCommand(
		customerID,
		menuItemID,
		request.Name,
		unitPrice,
		request.Available,
		request.Quantity,
		request.SpecialInstructions,
	)
	if err != nil {
		return badRequest(ctx, "Invalid cart item data: "+err.Error())
	}

	if err := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeCartItemQuantity handles PATCH /api/v1/customers/:customerID/cart/items/:itemID.
// A quantity below one removes the line.
func (s *Server) ChangeCartItemQuantity(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return badRequest(ctx, "Invalid cart item identifier")
	}

	var request ChangeQuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeCartItemQuantityCommand(customerID, itemID, request.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity change: "+err.Error())
	}

	if err := s.changeCartItemQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/customers/:customerID/cart/items/:itemID.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return badRequest(ctx, "Invalid cart item identifier")
	}

	cmd, err := commands.NewRemoveCartItemCommand(customerID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid removal request: "+err.Error())
	}

	if err := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/customers/:customerID/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	cmd, err := commands.NewClearCartCommand(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid clear request: "+err.Error())
	}

	if err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
