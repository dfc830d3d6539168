// handlers/mock_test.go
package handlers_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/beautylanka/payment-api/payments"
)

// fakeProcessor is an in-memory stand-in for Stripe. It hands out
// deterministic identifiers and tracks how many outward calls each
// handler made, so tests can assert that validation and auth failures
// short-circuit before any processor call.
type fakeProcessor struct {
	mu sync.Mutex

	customers      map[string]*payments.Customer // email -> customer
	chargesByKey   map[string]*payments.Charge   // idempotency key -> charge
	nextCustomerID int
	nextChargeID   int

	chargeStatus string // status for new charges, default "succeeded"

	findErr   error
	createErr error
	setupErr  error
	chargeErr error

	calls int
}

func newFakeProcessor() *fakeProcessor {
	return &fakeProcessor{
		customers:    make(map[string]*payments.Customer),
		chargesByKey: make(map[string]*payments.Charge),
		chargeStatus: "succeeded",
	}
}

func (f *fakeProcessor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeProcessor) FindCustomerByEmail(ctx context.Context, email string) (*payments.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.customers[email], nil
}

func (f *fakeProcessor) CreateCustomer(ctx context.Context, email, name string) (*payments.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextCustomerID++
	c := &payments.Customer{
		ID:    fmt.Sprintf("cus_test%06d", f.nextCustomerID),
		Email: email,
		Name:  name,
	}
	f.customers[email] = c
	return c, nil
}

func (f *fakeProcessor) CreateSetupIntent(ctx context.Context, customerID string) (*payments.SetupIntent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.setupErr != nil {
		return nil, f.setupErr
	}
	return &payments.SetupIntent{
		ID:           "seti_test_" + customerID,
		ClientSecret: "seti_test_" + customerID + "_secret_abc",
	}, nil
}

func (f *fakeProcessor) CreateCharge(ctx context.Context, params payments.ChargeParams) (*payments.Charge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.chargeErr != nil {
		return nil, f.chargeErr
	}
	if params.IdempotencyKey != "" {
		if prior, ok := f.chargesByKey[params.IdempotencyKey]; ok {
			return prior, nil
		}
	}
	f.nextChargeID++
	ch := &payments.Charge{
		ID:     fmt.Sprintf("pi_test%06d", f.nextChargeID),
		Status: f.chargeStatus,
	}
	if params.IdempotencyKey != "" {
		f.chargesByKey[params.IdempotencyKey] = ch
	}
	return ch, nil
}
