// Package cart implements the customer's shopping cart aggregate.
//
// The cart is a ledger of line items the customer intends to buy. Two additions
// of the same menu item with identical special instructions merge into one line
// by incrementing its quantity; different instructions create distinct lines.
// Totals are never stored: Snapshot() recomputes the cart total and item count
// from the surviving lines on every call, so they can never drift from the
// items themselves.
//
// Each cart is scoped to a single customer session and is not shared, so the
// aggregate performs no internal locking.
package cart
