// Package services provides domain services that implement business operations
// which don't naturally belong to a single aggregate root in the storefront system.
//
// The package includes:
//   - CardValidator: A domain service for validating payment card details before checkout submission
//
// Domain services hold pure business rules shared across use cases, following
// Domain-Driven Design principles.
package services
