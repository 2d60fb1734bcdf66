package handlers

import (
	"encoding/json"
	"net/http"

	"firefly/internal/models"
)

func (h *Handlers) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.TagRepo.List(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, tags, http.StatusOK)
}

func (h *Handlers) CreateTag(w http.ResponseWriter, r *http.Request) {
	var tag models.Document
	if err := json.NewDecoder(r.Body).Decode(&tag); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.TagRepo.Create(r.Context(), tag)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}
