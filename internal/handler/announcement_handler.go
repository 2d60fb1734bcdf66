package handlers

import (
	"encoding/json"
	"net/http"

	"firefly/internal/models"
)

func (h *Handlers) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.AnnouncementRepo.List(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, announcements, http.StatusOK)
}

func (h *Handlers) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var announcement models.Document
	if err := json.NewDecoder(r.Body).Decode(&announcement); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.AnnouncementRepo.Create(r.Context(), announcement)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}
