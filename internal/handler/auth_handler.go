package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"firefly/internal/models"
)

type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken signs the request body as token claims. Claims must carry
// at least the caller's email.
func (h *Handlers) IssueToken(w http.ResponseWriter, r *http.Request) {
	var claims models.Document
	if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	email, _ := claims["email"].(string)
	if err := h.Validate.Var(email, "required,email"); err != nil {
		WriteError(w, "email claim is required", http.StatusBadRequest)
		return
	}

	token, err := h.TokenService.Issue(claims)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}

// Home is the liveness route.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "final firefly server is running....")
}
