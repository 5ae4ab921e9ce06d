// Package order implements the placed-order aggregate and its status machine.
//
// An Order is created once, atomically, when checkout completes. After that it
// is immutable except for its status and payment status, which staff advance
// through ChangeStatus along the legal transition graph. Terminal orders are
// never deleted; they are retained for history.
//
// Two cross-field effects fire automatically on transition: delivering a cash
// order collects its payment, and cancelling a paid order refunds it. No other
// status change touches the payment status.
package order
