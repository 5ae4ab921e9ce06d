// Package checkout implements the checkout session aggregate: a finite state
// machine that walks a non-empty cart through address collection, payment
// selection, and confirmation.
//
// The step sequence is strictly linear going forward (cart, details, payment,
// confirmation) with every forward move guarded; backward navigation to any
// prior step is free and never discards previously entered data, so fields
// are pre-filled on re-entry. Confirmation is terminal for the session; the
// only way out is Reset, which starts a fresh order cycle.
//
// The order total is captured into the session at the moment payment is
// submitted, before the cart is cleared. The session is the only durable
// record of what was charged once the cart is gone.
package checkout
