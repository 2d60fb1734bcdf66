package handlers

import (
	"encoding/json"
	"net/http"

	"firefly/internal/models"

	"github.com/gorilla/mux"
)

type AdminResponse struct {
	Admin bool `json:"admin"`
}

// ListUsers returns all users, optionally filtered by name.
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	users, err := h.UserRepo.List(r.Context(), name)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, users, http.StatusOK)
}

// GetUserByEmail returns one user or null when absent.
func (h *Handlers) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := h.UserRepo.GetByEmail(r.Context(), email)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}

// CheckAdmin reports whether the caller is an admin. Self-only: the
// path email must match the token's email claim.
func (h *Handlers) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	if email != ClaimedEmail(r.Context()) {
		WriteMessage(w, "forbidden access", http.StatusForbidden)
		return
	}

	user, err := h.UserRepo.GetByEmail(r.Context(), email)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	isAdmin := false
	if user != nil {
		isAdmin = user["role"] == "admin"
	}

	WriteSuccess(w, AdminResponse{Admin: isAdmin}, http.StatusOK)
}

// CreateUser inserts the user unless the email is already taken.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.Document
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.UserRepo.Create(r.Context(), user)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}

// MakeAdmin sets role=admin on the user matched by id. No upsert.
func (h *Handlers) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.UserRepo.SetAdminRole(r.Context(), id)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}

// AwardBadge sets badge=gold on the user matched by email.
func (h *Handlers) AwardBadge(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	result, err := h.UserRepo.SetBadge(r.Context(), email)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.UserRepo.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}
