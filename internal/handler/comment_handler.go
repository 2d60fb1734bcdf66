package handlers

import (
	"encoding/json"
	"net/http"

	"firefly/internal/models"

	"github.com/gorilla/mux"
)

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.CommentRepo.ListAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) ListCommentsByPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	comments, err := h.CommentRepo.ListByPost(r.Context(), postID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var comment models.Document
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.CommentRepo.Create(r.Context(), comment)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}

// ReportComment replaces the report field of the matched comment.
func (h *Handlers) ReportComment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body models.Document
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.CommentRepo.SetReport(r.Context(), id, body["report"])
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.CommentRepo.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}
