// handlers/setup_intent.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/beautylanka/payment-api/payments"
)

type SetupIntentRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SetupIntentResponse struct {
	OK           bool   `json:"ok"`
	CustomerID   string `json:"customerId"`
	ClientSecret string `json:"clientSecret"`
}

// CreateSetupIntent finds or creates a processor customer for the given
// email and issues a setup intent for saving a payment method
// off-session. The front-end completes card collection with the
// returned client secret; card data never touches this service.
func (h *Handlers) CreateSetupIntent(w http.ResponseWriter, r *http.Request) {
	var req SetupIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithFailure(w, payments.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if req.Email == "" {
		respondWithFailure(w, payments.NewValidationError("email required"))
		return
	}

	ctx := r.Context()

	// Reuse an existing customer when one matches the email
	cust, err := h.processor.FindCustomerByEmail(ctx, req.Email)
	if err != nil {
		respondWithFailure(w, err)
		return
	}
	if cust == nil {
		cust, err = h.processor.CreateCustomer(ctx, req.Email, req.Name)
		if err != nil {
			respondWithFailure(w, err)
			return
		}
	}

	si, err := h.processor.CreateSetupIntent(ctx, cust.ID)
	if err != nil {
		respondWithFailure(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SetupIntentResponse{
		OK:           true,
		CustomerID:   cust.ID,
		ClientSecret: si.ClientSecret,
	})
}
