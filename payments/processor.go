// payments/processor.go
package payments

import (
	"context"
)

// Currency is fixed for all charges. JPY has no minor unit, so amounts
// are whole yen.
const Currency = "jpy"

// DefaultChargeDescription is used when the caller supplies none.
const DefaultChargeDescription = "Beauty Lanka service"

// Customer is a reference to a processor-side customer record
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// SetupIntent carries the client secret the front-end needs to collect
// and attach a payment method
type SetupIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// Charge is the result of a payment intent creation. Status is passed
// through verbatim from the processor (e.g. succeeded, requires_action).
type Charge struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ChargeParams describes an off-session charge against a customer's
// saved default payment method
type ChargeParams struct {
	CustomerID     string
	Amount         int64 // whole yen
	Description    string
	IdempotencyKey string
}

// Processor is the outward-facing payment processor. All state
// (customers, payment methods, charges) lives on the processor side;
// this service only relays references.
type Processor interface {
	// FindCustomerByEmail returns the first customer whose email matches
	// exactly, or nil if none exists.
	FindCustomerByEmail(ctx context.Context, email string) (*Customer, error)

	// CreateCustomer registers a new customer. Name may be empty.
	CreateCustomer(ctx context.Context, email, name string) (*Customer, error)

	// CreateSetupIntent issues a setup intent scoped to the customer,
	// flagged for future off-session use.
	CreateSetupIntent(ctx context.Context, customerID string) (*SetupIntent, error)

	// CreateCharge creates an immediately-confirmed off-session payment
	// intent against the customer's default saved payment method.
	CreateCharge(ctx context.Context, params ChargeParams) (*Charge, error)
}
