package handlers

import (
	"encoding/json"
	"net/http"

	"firefly/internal/models"
)

type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent relays the price to the payment collaborator and
// returns the client secret.
func (h *Handlers) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req PaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "price is required", http.StatusBadRequest)
		return
	}

	clientSecret, err := h.PaymentService.CreateIntent(r.Context(), req.Price)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, PaymentIntentResponse{ClientSecret: clientSecret}, http.StatusOK)
}

// CreatePayment persists the submitted payment record as-is. The server
// does not check it against a completed intent.
func (h *Handlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var record models.Document
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.PaymentRepo.Create(r.Context(), record)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}
