// payments/stripe.go
package payments

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/setupintent"
)

// StripeProcessor implements Processor against the Stripe API using the
// package-level clients keyed by stripe.Key.
type StripeProcessor struct{}

// NewStripeProcessor sets the global Stripe API key and returns a
// processor bound to it
func NewStripeProcessor(apiKey string) *StripeProcessor {
	stripe.Key = apiKey
	return &StripeProcessor{}
}

// FindCustomerByEmail looks up an existing customer by exact email
// match. First match wins; Stripe allows multiple customers per email
// and no disambiguation is attempted.
func (p *StripeProcessor) FindCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	params := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := customer.List(params)
	for iter.Next() {
		c := iter.Customer()
		return &Customer{ID: c.ID, Email: c.Email, Name: c.Name}, nil
	}
	if err := iter.Err(); err != nil {
		return nil, &UpstreamError{Err: err}
	}
	return nil, nil
}

// CreateCustomer registers a new Stripe customer
func (p *StripeProcessor) CreateCustomer(ctx context.Context, email, name string) (*Customer, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	if name != "" {
		params.Name = stripe.String(name)
	}

	c, err := customer.New(params)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	return &Customer{ID: c.ID, Email: c.Email, Name: c.Name}, nil
}

// CreateSetupIntent issues a setup intent for saving a payment method
// for later merchant-initiated use
func (p *StripeProcessor) CreateSetupIntent(ctx context.Context, customerID string) (*SetupIntent, error) {
	params := &stripe.SetupIntentParams{
		Customer: stripe.String(customerID),
		Usage:    stripe.String(string(stripe.SetupIntentUsageOffSession)),
	}
	params.Context = ctx

	si, err := setupintent.New(params)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	return &SetupIntent{ID: si.ID, ClientSecret: si.ClientSecret}, nil
}

// CreateCharge creates a confirmed off-session payment intent. The
// caller's idempotency key, if any, is forwarded to Stripe verbatim;
// this service performs no deduplication of its own.
func (p *StripeProcessor) CreateCharge(ctx context.Context, cp ChargeParams) (*Charge, error) {
	description := cp.Description
	if description == "" {
		description = DefaultChargeDescription
	}

	params := &stripe.PaymentIntentParams{
		Customer:    stripe.String(cp.CustomerID),
		Amount:      stripe.Int64(cp.Amount),
		Currency:    stripe.String(Currency),
		Confirm:     stripe.Bool(true),
		OffSession:  stripe.Bool(true),
		Description: stripe.String(description),
	}
	params.Context = ctx
	if cp.IdempotencyKey != "" {
		params.SetIdempotencyKey(cp.IdempotencyKey)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		// Declines and 3-D Secure step-ups land here; the status in the
		// error body is the caller's problem to inspect.
		return nil, &UpstreamError{Err: err}
	}
	return &Charge{ID: pi.ID, Status: string(pi.Status)}, nil
}
