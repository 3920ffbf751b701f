package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"homeserv/handlers"
	"homeserv/models"
	"homeserv/services/triage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedModel answers with a canned reply or error.
type scriptedModel struct {
	configured bool
	reply      string
	err        error
}

func (m *scriptedModel) Configured() bool { return m.configured }

func (m *scriptedModel) Evaluate(context.Context, triage.AdvisoryPrompt) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// chatBookingCreator records escalations issued by the chat pipeline.
type chatBookingCreator struct {
	calls int
}

func (f *chatBookingCreator) CreateFromTriage(userID, serviceName, issue string) (*models.Booking, error) {
	f.calls++
	return &models.Booking{
		ID:          uuid.NewString(),
		UserID:      userID,
		ServiceName: serviceName,
		Details:     issue,
		Status:      models.StatusPending,
		Source:      models.SourceChat,
	}, nil
}

func newChatRouter(model triage.AdvisoryModel) (*gin.Engine, *chatBookingCreator) {
	creator := &chatBookingCreator{}
	svc := triage.NewDefaultTriageService(triage.NewAdvisoryClient(model), creator)
	handler := handlers.NewChatHandler(svc)

	router := gin.New()
	router.POST("/api/chat", handler.HandleChat)
	return router, creator
}

func TestChatDIYFlow(t *testing.T) {
	model := &scriptedModel{
		configured: true,
		reply:      `{"issue":"loose hinge","service":"Carpentry","diy_safe":true,"steps":["tighten the screws","apply wood glue"]}`,
	}
	router, creator := newChatRouter(model)

	w := doJSON(t, router, http.MethodPost, "/api/chat", gin.H{"user_id": "u1", "image": "aGVsbG8="})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.ChatTypeDIY, resp.Type)
	assert.Contains(t, resp.Reply, "1. tighten the screws")
	assert.Contains(t, resp.Reply, "2. apply wood glue")
	assert.Zero(t, creator.calls)
}

func TestChatRiskyFlowCreatesBooking(t *testing.T) {
	model := &scriptedModel{
		configured: true,
		reply:      `{"issue":"gas smell near stove","service":"Gas Fitting","diy_safe":false}`,
	}
	router, creator := newChatRouter(model)

	w := doJSON(t, router, http.MethodPost, "/api/chat", gin.H{"user_id": "u3", "image": "aGVsbG8="})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.ChatTypeRisky, resp.Type)
	assert.Contains(t, resp.Reply, "Booking ID: ")
	assert.Equal(t, 1, creator.calls)
}

func TestChatTextFlow(t *testing.T) {
	model := &scriptedModel{configured: true, reply: "Check the breaker box first."}
	router, _ := newChatRouter(model)

	w := doJSON(t, router, http.MethodPost, "/api/chat", gin.H{"user_id": "u1", "message": "lights flickering"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.ChatTypeText, resp.Type)
	assert.Equal(t, "Check the breaker box first.", resp.Reply)
}

func TestChatKeyMissing(t *testing.T) {
	router, _ := newChatRouter(&scriptedModel{configured: false})

	w := doJSON(t, router, http.MethodPost, "/api/chat", gin.H{"user_id": "u1", "message": "hello"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "AI key missing")
}

func TestChatInputValidation(t *testing.T) {
	router, _ := newChatRouter(&scriptedModel{configured: true})

	w := doJSON(t, router, http.MethodPost, "/api/chat", gin.H{"user_id": "u1", "message": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Message cannot be empty")

	w = doJSON(t, router, http.MethodPost, "/api/chat", gin.H{"user_id": "u1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Either a message or an image is required")
}

func TestChatUpstreamFailure(t *testing.T) {
	model := &scriptedModel{
		configured: true,
		err:        triage.AdvisoryUnavailableError{StatusCode: 503, Detail: "model overloaded, retry later"},
	}
	router, _ := newChatRouter(model)

	w := doJSON(t, router, http.MethodPost, "/api/chat", gin.H{"user_id": "u1", "message": "help"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "model overloaded, retry later")
}
