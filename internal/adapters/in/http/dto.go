package http

import "time"

// ErrorResponse is the common error payload for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddCartItemRequest is the payload for adding a menu item to the cart.
type AddCartItemRequest struct {
	MenuItemID          string `json:"menuItemId"`
	Name                string `json:"name"`
	UnitPriceCents      int64  `json:"unitPriceCents"`
	Available           bool   `json:"available"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions"`
}

// ChangeQuantityRequest is the payload for changing a cart line's quantity.
// A quantity below one removes the line.
type ChangeQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLine is one line of the cart view.
type CartLine struct {
	ID                  string `json:"id"`
	MenuItemID          string `json:"menuItemId"`
	Name                string `json:"name"`
	UnitPriceCents      int64  `json:"unitPriceCents"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
	SubtotalCents       int64  `json:"subtotalCents"`
}

// CartResponse is the cart view returned to the storefront.
type CartResponse struct {
	Items      []CartLine `json:"items"`
	TotalCents int64      `json:"totalCents"`
	ItemCount  int        `json:"itemCount"`
}

// ShippingDetailsRequest is the delivery details form.
type ShippingDetailsRequest struct {
	FullName     string `json:"fullName"`
	Street       string `json:"street"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Phone        string `json:"phone"`
	Instructions string `json:"instructions"`
}

// SelectPaymentRequest is the payment step form. Card fields are only
// consulted when method is "card".
type SelectPaymentRequest struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCVV    string `json:"cardCvv"`
	CardName   string `json:"cardName"`
}

// NavigateBackRequest names the earlier checkout step to return to.
type NavigateBackRequest struct {
	Target string `json:"target"`
}

// AddressResponse mirrors the stored delivery address.
type AddressResponse struct {
	FullName     string `json:"fullName"`
	Street       string `json:"street"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Phone        string `json:"phone"`
	Instructions string `json:"instructions,omitempty"`
}

// CheckoutSessionResponse is the checkout progress view.
// Card number and CVV are never echoed back.
type CheckoutSessionResponse struct {
	Step            string           `json:"step"`
	Address         *AddressResponse `json:"address,omitempty"`
	PaymentMethod   string           `json:"paymentMethod,omitempty"`
	CardholderName  string           `json:"cardholderName,omitempty"`
	OrderID         string           `json:"orderId,omitempty"`
	OrderTotalCents int64            `json:"orderTotalCents,omitempty"`
}

// OrderConfirmationResponse is returned when an order is placed.
type OrderConfirmationResponse struct {
	OrderID           string    `json:"orderId"`
	OrderNumber       string    `json:"orderNumber"`
	TotalCents        int64     `json:"totalCents"`
	Message           string    `json:"message"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// OrderSummary is one row of the staff order list.
type OrderSummary struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	CustomerName  string    `json:"customerName"`
	TotalCents    int64     `json:"totalCents"`
	ItemCount     int       `json:"itemCount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OrderLine is one line of an order detail view.
type OrderLine struct {
	MenuItemID          string `json:"menuItemId"`
	Name                string `json:"name"`
	UnitPriceCents      int64  `json:"unitPriceCents"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
	SubtotalCents       int64  `json:"subtotalCents"`
}

// OrderDetailResponse is the staff order detail view.
type OrderDetailResponse struct {
	ID                  string          `json:"id"`
	Number              string          `json:"number"`
	CustomerID          string          `json:"customerId"`
	Items               []OrderLine     `json:"items"`
	TotalCents          int64           `json:"totalCents"`
	Status              string          `json:"status"`
	PaymentMethod       string          `json:"paymentMethod"`
	PaymentStatus       string          `json:"paymentStatus"`
	Address             AddressResponse `json:"address"`
	CreatedAt           time.Time       `json:"createdAt"`
	AllowedNextStatuses []string        `json:"allowedNextStatuses"`
}

// UpdateOrderStatusRequest is the staff status change form.
// ExpectedStatus guards against concurrent edits of the same order.
type UpdateOrderStatusRequest struct {
	Status         string `json:"status"`
	ExpectedStatus string `json:"expectedStatus"`
}

// DashboardStatsResponse is the staff dashboard view.
type DashboardStatsResponse struct {
	OrdersToday       int64            `json:"ordersToday"`
	RevenueTodayCents int64            `json:"revenueTodayCents"`
	ActiveOrders      int64            `json:"activeOrders"`
	CountsByStatus    map[string]int64 `json:"countsByStatus"`
}
