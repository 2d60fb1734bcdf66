package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firefly/internal/config"
	handlers "firefly/internal/handler"
	"firefly/internal/models"
	"firefly/internal/service"
)

type testMocks struct {
	Users          *MockUserRepository
	Posts          *MockPostRepository
	Comments       *MockCommentRepository
	Announcements  *MockAnnouncementRepository
	Tags           *MockTagRepository
	Payments       *MockPaymentRepository
	PaymentService *MockPaymentService
}

// createTestHandlers wires mock repositories together with a real token
// service, so gate tests exercise real verification.
func createTestHandlers() (*handlers.Handlers, *testMocks) {
	cfg := &config.Config{
		AccessTokenSecret: "test-secret-key",
		ServerPort:        5000,
	}

	m := &testMocks{
		Users:          new(MockUserRepository),
		Posts:          new(MockPostRepository),
		Comments:       new(MockCommentRepository),
		Announcements:  new(MockAnnouncementRepository),
		Tags:           new(MockTagRepository),
		Payments:       new(MockPaymentRepository),
		PaymentService: new(MockPaymentService),
	}

	h := &handlers.Handlers{
		UserRepo:         m.Users,
		PostRepo:         m.Posts,
		CommentRepo:      m.Comments,
		AnnouncementRepo: m.Announcements,
		TagRepo:          m.Tags,
		PaymentRepo:      m.Payments,
		TokenService:     service.NewTokenService(cfg),
		PaymentService:   m.PaymentService,
		Cfg:              cfg,
		Validate:         validator.New(),
	}

	return h, m
}

func issueToken(t *testing.T, h *handlers.Handlers, email string) string {
	token, err := h.TokenService.Issue(models.Document{"email": email})
	require.NoError(t, err)
	return token
}

// assertMessage checks the fixed {"message": ...} gate responses.
func assertMessage(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, rr.Code)

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, expectedMessage, response["message"])
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)
	return response
}
