// handlers/charge.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"

	"github.com/beautylanka/payment-api/payments"
)

type ChargeRequest struct {
	CustomerID     string   `json:"customerId"`
	AmountJPY      *float64 `json:"amountJPY"`
	Description    string   `json:"description"`
	IdempotencyKey string   `json:"idempotencyKey"`
}

type ChargeResponse struct {
	OK              bool   `json:"ok"`
	PaymentIntentID string `json:"paymentIntentId"`
	Status          string `json:"status"`
}

// CreateCharge bills a customer's saved default payment method for a
// whole-yen amount, immediately confirmed and off-session. The status
// is passed through verbatim; requires_action means the processor wants
// step-up authentication and the charge did not complete.
func (h *Handlers) CreateCharge(w http.ResponseWriter, r *http.Request) {
	// Admin gate runs before anything else. No configured token means
	// the endpoint is open; config.Load warns about that at startup.
	if h.config.AdminToken != "" && r.Header.Get("x-admin-token") != h.config.AdminToken {
		respondWithFailure(w, &payments.AuthError{})
		return
	}

	var req ChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithFailure(w, payments.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if req.CustomerID == "" {
		respondWithFailure(w, payments.NewValidationError("customerId required"))
		return
	}
	// JPY has no minor unit, so only whole amounts make sense
	if req.AmountJPY == nil || *req.AmountJPY != math.Trunc(*req.AmountJPY) {
		respondWithFailure(w, payments.NewValidationError("amountJPY must be integer (JPY)"))
		return
	}

	charge, err := h.processor.CreateCharge(r.Context(), payments.ChargeParams{
		CustomerID:     req.CustomerID,
		Amount:         int64(*req.AmountJPY),
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		respondWithFailure(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ChargeResponse{
		OK:              true,
		PaymentIntentID: charge.ID,
		Status:          charge.Status,
	})
}
