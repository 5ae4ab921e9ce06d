package services

import (
	"regexp"
	"strings"

	"storefront/internal/core/domain/model/checkout"
)

// Reasons reported by CardValidator, in the order the checks run.
const (
	ReasonInvalidCardNumber      = "Invalid card number"
	ReasonInvalidExpiryDate      = "Invalid expiry date"
	ReasonInvalidCVV             = "Invalid CVV"
	ReasonCardholderNameRequired = "Cardholder name is required"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryPattern     = regexp.MustCompile(`^\d{2}\/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3}$`)
	whitespacePattern = regexp.MustCompile(`\s`)
)

// CardValidationResult is the outcome of a card check. When Valid is false,
// Reason carries a customer-facing message for the first failed rule.
type CardValidationResult struct {
	Valid  bool
	Reason string
}

// CardValidator is a domain service that validates payment card details.
//
// Rules, checked in order with the first failure winning:
//   - card number must be exactly 16 digits after stripping whitespace
//   - expiry must match the MM/YY shape; the month value is not range-checked
//   - CVV must be exactly 3 digits
//   - cardholder name must be non-blank
//
// The validator is format-only: it does not check expiry against the current
// date and it does not contact any payment network.
type CardValidator struct{}

// NewCardValidator creates a new CardValidator instance.
func NewCardValidator() CardValidator {
	return CardValidator{}
}

// Validate checks the given card details and reports the first violated rule.
func (v CardValidator) Validate(details checkout.CardDetails) CardValidationResult {
	number := whitespacePattern.ReplaceAllString(details.Number, "")
	if !cardNumberPattern.MatchString(number) {
		return CardValidationResult{Reason: ReasonInvalidCardNumber}
	}

	if !expiryPattern.MatchString(details.Expiry) {
		return CardValidationResult{Reason: ReasonInvalidExpiryDate}
	}

	if !cvvPattern.MatchString(details.CVV) {
		return CardValidationResult{Reason: ReasonInvalidCVV}
	}

	if strings.TrimSpace(details.Name) == "" {
		return CardValidationResult{Reason: ReasonCardholderNameRequired}
	}

	return CardValidationResult{Valid: true}
}
