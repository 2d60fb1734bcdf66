package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"firefly/internal/models"
)

func listPostsRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func TestListPosts_Pagination(t *testing.T) {
	h, m := createTestHandlers()

	page := make([]models.Document, 10)
	for i := range page {
		page[i] = models.Document{"title": "post"}
	}
	m.Posts.On("ListPage", mock.Anything, 0, 10).Return(page, nil)

	rr := httptest.NewRecorder()
	h.ListPosts(rr, listPostsRequest("/posts?page=0&size=10"))

	require.Equal(t, http.StatusOK, rr.Code)

	var posts []models.Document
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
	assert.Len(t, posts, 10)
	m.Posts.AssertExpectations(t)
}

func TestListPosts_FilterPriority(t *testing.T) {
	h, m := createTestHandlers()

	// page+size wins over the other filters
	m.Posts.On("ListPage", mock.Anything, 1, 5).Return([]models.Document{}, nil)

	rr := httptest.NewRecorder()
	h.ListPosts(rr, listPostsRequest("/posts?page=1&size=5&tags=golang&email=a@x.com"))

	assert.Equal(t, http.StatusOK, rr.Code)
	m.Posts.AssertExpectations(t)
	m.Posts.AssertNotCalled(t, "ListByTag", mock.Anything, mock.Anything)
	m.Posts.AssertNotCalled(t, "ListByAuthor", mock.Anything, mock.Anything)
}

func TestListPosts_ByTag(t *testing.T) {
	h, m := createTestHandlers()

	m.Posts.On("ListByTag", mock.Anything, "golang").
		Return([]models.Document{{"tags": "golang"}}, nil)

	rr := httptest.NewRecorder()
	h.ListPosts(rr, listPostsRequest("/posts?tags=golang"))

	assert.Equal(t, http.StatusOK, rr.Code)
	m.Posts.AssertExpectations(t)
}

func TestListPosts_ByAuthor(t *testing.T) {
	h, m := createTestHandlers()

	m.Posts.On("ListByAuthor", mock.Anything, "a@x.com").
		Return([]models.Document{{"authorEmail": "a@x.com"}}, nil)

	rr := httptest.NewRecorder()
	h.ListPosts(rr, listPostsRequest("/posts?email=a@x.com"))

	assert.Equal(t, http.StatusOK, rr.Code)
	m.Posts.AssertExpectations(t)
}

func TestListPosts_All(t *testing.T) {
	h, m := createTestHandlers()

	m.Posts.On("ListAll", mock.Anything).Return([]models.Document{}, nil)

	rr := httptest.NewRecorder()
	h.ListPosts(rr, listPostsRequest("/posts"))

	assert.Equal(t, http.StatusOK, rr.Code)
	m.Posts.AssertExpectations(t)
}

func TestPostsCount(t *testing.T) {
	h, m := createTestHandlers()

	m.Posts.On("EstimatedCount", mock.Anything).Return(int64(42), nil)

	rr := httptest.NewRecorder()
	h.PostsCount(rr, httptest.NewRequest(http.MethodGet, "/postsCount", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	response := decodeBody(t, rr)
	assert.Equal(t, float64(42), response["count"])
}

func TestUpdatePostVotes_PatchesOnlyVoteFields(t *testing.T) {
	h, m := createTestHandlers()

	m.Posts.On("UpdateVotes", mock.Anything, "post-1", mock.MatchedBy(func(votes models.Document) bool {
		_, hasTitle := votes["title"]
		return !hasTitle &&
			votes["upVote"] == float64(5) &&
			votes["downVote"] == float64(1)
	})).Return(&models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"upVote":     5,
		"upVoteBy":   []string{"a@x.com"},
		"downVote":   1,
		"downVoteBy": []string{"b@x.com"},
		"title":      "must not be patched",
	})
	req := httptest.NewRequest(http.MethodPatch, "/posts/post-1", bytes.NewBuffer(body))
	req = mux.SetURLVars(req, map[string]string{"id": "post-1"})
	rr := httptest.NewRecorder()

	h.UpdatePostVotes(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.Posts.AssertExpectations(t)
}

func TestUpdatePostVotes_Upsert(t *testing.T) {
	h, m := createTestHandlers()

	upsertedID := "post-9"
	m.Posts.On("UpdateVotes", mock.Anything, "post-9", mock.Anything).
		Return(&models.UpdateResult{UpsertedID: &upsertedID}, nil)

	body, _ := json.Marshal(map[string]interface{}{"upVote": 1})
	req := httptest.NewRequest(http.MethodPatch, "/posts/post-9", bytes.NewBuffer(body))
	req = mux.SetURLVars(req, map[string]string{"id": "post-9"})
	rr := httptest.NewRecorder()

	h.UpdatePostVotes(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	response := decodeBody(t, rr)
	assert.Equal(t, "post-9", response["upsertedId"])
	assert.Equal(t, float64(0), response["matchedCount"])
}

func TestGetPost_Absent(t *testing.T) {
	h, m := createTestHandlers()

	m.Posts.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/posts/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})
	rr := httptest.NewRecorder()

	h.GetPost(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "null", rr.Body.String())
}

func TestDeletePost(t *testing.T) {
	h, m := createTestHandlers()

	m.Posts.On("Delete", mock.Anything, "post-1").
		Return(&models.DeleteResult{DeletedCount: 1}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/posts/post-1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "post-1"})
	rr := httptest.NewRecorder()

	h.DeletePost(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	response := decodeBody(t, rr)
	assert.Equal(t, float64(1), response["deletedCount"])
}
