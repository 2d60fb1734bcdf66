package handlers

import (
	"net/http"

	"firefly/internal/models"
)

// AdminStats returns the collection counts and the payment revenue sum.
// Each figure is computed independently, so the set is not a consistent
// snapshot under concurrent writes.
func (h *Handlers) AdminStats(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserRepo.Count(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	posts, err := h.PostRepo.Count(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	payments, err := h.PaymentRepo.Count(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	comments, err := h.CommentRepo.Count(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	revenue, err := h.PaymentRepo.Revenue(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, models.AdminStats{
		Users:    users,
		Posts:    posts,
		Payments: payments,
		Comments: comments,
		Revenue:  revenue,
	}, http.StatusOK)
}
