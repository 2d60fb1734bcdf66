package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"firefly/internal/models"

	"github.com/gorilla/mux"
)

type CountResponse struct {
	Count int64 `json:"count"`
}

// ListPosts returns posts. Filters are mutually exclusive, checked in
// priority order: page+size, tags, email, then all.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		posts []models.Document
		err   error
	)

	switch {
	case query.Has("page") && query.Has("size"):
		page, _ := strconv.Atoi(query.Get("page"))
		size, _ := strconv.Atoi(query.Get("size"))
		posts, err = h.PostRepo.ListPage(r.Context(), page, size)
	case query.Has("tags"):
		posts, err = h.PostRepo.ListByTag(r.Context(), query.Get("tags"))
	case query.Has("email"):
		posts, err = h.PostRepo.ListByAuthor(r.Context(), query.Get("email"))
	default:
		posts, err = h.PostRepo.ListAll(r.Context())
	}

	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

// GetPost returns one post or null when absent.
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := h.PostRepo.GetByID(r.Context(), id)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

// PostsCount returns the approximate total, independent of any page.
func (h *Handlers) PostsCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.PostRepo.EstimatedCount(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, CountResponse{Count: count}, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var post models.Document
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.PostRepo.Create(r.Context(), post)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}

// UpdatePostVotes replaces the four vote fields wholesale, creating the
// document when the id does not exist.
func (h *Handlers) UpdatePostVotes(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body models.Document
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	votes := models.Document{
		"upVote":     body["upVote"],
		"upVoteBy":   body["upVoteBy"],
		"downVote":   body["downVote"],
		"downVoteBy": body["downVoteBy"],
	}

	result, err := h.PostRepo.UpdateVotes(r.Context(), id, votes)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.PostRepo.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}
