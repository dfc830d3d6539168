// handlers/handlers.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/beautylanka/payment-api/config"
	"github.com/beautylanka/payment-api/payments"
)

// Handlers holds all HTTP handlers and their dependencies
type Handlers struct {
	config    *config.Config
	processor payments.Processor
}

// NewHandlers creates a new Handlers instance
func NewHandlers(cfg *config.Config, processor payments.Processor) *Handlers {
	return &Handlers{
		config:    cfg,
		processor: processor,
	}
}

// statusForError maps a classified error to its HTTP status. Auth
// failures are the only case with a distinct status; validation and
// upstream failures both surface as 400.
func statusForError(err error) int {
	var authErr *payments.AuthError
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized
	}
	return http.StatusBadRequest
}

// respondWithFailure writes the {ok:false, error} envelope for err
func respondWithFailure(w http.ResponseWriter, err error) {
	respondWithJSON(w, statusForError(err), map[string]interface{}{
		"ok":    false,
		"error": err.Error(),
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Error encoding response"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
