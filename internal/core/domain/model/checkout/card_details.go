package checkout

// CardDetails is the raw card form input collected on the payment step.
// It is a plain record: shape validation lives in services.CardValidator and
// the actual charge in the payment gateway collaborator.
type CardDetails struct {
	Number string
	Expiry string
	CVV    string
	Name   string
}

// IsZero reports whether no card field has been entered.
func (c CardDetails) IsZero() bool {
	return c == CardDetails{}
}
