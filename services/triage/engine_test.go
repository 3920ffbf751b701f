package triage_test

import (
	"context"
	"testing"
	"time"

	"homeserv/models"
	"homeserv/services/triage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubModel is a deterministic AdvisoryModel for tests.
type stubModel struct {
	configured bool
	reply      string
	err        error
	lastPrompt triage.AdvisoryPrompt
	calls      int
}

func (m *stubModel) Configured() bool { return m.configured }

func (m *stubModel) Evaluate(_ context.Context, prompt triage.AdvisoryPrompt) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// fakeBookingCreator records triage escalations.
type fakeBookingCreator struct {
	calls    int
	lastUser string
	bookings []*models.Booking
}

func (f *fakeBookingCreator) CreateFromTriage(userID, serviceName, issue string) (*models.Booking, error) {
	f.calls++
	f.lastUser = userID
	booked := &models.Booking{
		ID:          uuid.NewString(),
		UserID:      userID,
		ServiceName: serviceName,
		Details:     issue,
		Status:      models.StatusPending,
		Source:      models.SourceChat,
		CreatedAt:   time.Now(),
	}
	f.bookings = append(f.bookings, booked)
	return booked, nil
}

func newEngine(model *stubModel) (*triage.DefaultTriageService, *fakeBookingCreator) {
	creator := &fakeBookingCreator{}
	return triage.NewDefaultTriageService(triage.NewAdvisoryClient(model), creator), creator
}

func TestProcessChatUnconfigured(t *testing.T) {
	svc, _ := newEngine(&stubModel{configured: false})

	_, err := svc.ProcessChat(context.Background(), models.ChatRequest{Message: strPtr("hi")})
	assert.ErrorIs(t, err, triage.ErrConfigurationMissing)
}

func TestProcessChatRejectsMissingInput(t *testing.T) {
	model := &stubModel{configured: true}
	svc, creator := newEngine(model)

	_, err := svc.ProcessChat(context.Background(), models.ChatRequest{UserID: "u1"})
	assert.ErrorIs(t, err, triage.ErrMissingInput)

	blank := "   "
	_, err = svc.ProcessChat(context.Background(), models.ChatRequest{Message: &blank})
	assert.ErrorIs(t, err, triage.ErrEmptyMessage)

	assert.Zero(t, model.calls, "rejected input must not reach the model")
	assert.Zero(t, creator.calls)
}

func TestProcessChatTextPassthrough(t *testing.T) {
	model := &stubModel{configured: true, reply: "Turn off the water main first."}
	svc, creator := newEngine(model)

	resp, err := svc.ProcessChat(context.Background(), models.ChatRequest{Message: strPtr("pipe is dripping")})
	require.NoError(t, err)
	assert.Equal(t, models.ChatTypeText, resp.Type)
	assert.Equal(t, "Turn off the water main first.", resp.Reply)
	assert.NotEmpty(t, model.lastPrompt.System)
	assert.Equal(t, "pipe is dripping", model.lastPrompt.User)
	assert.Zero(t, creator.calls)
}

func TestProcessChatImageDIY(t *testing.T) {
	model := &stubModel{
		configured: true,
		reply:      `{"issue":"clogged drain","service":"Plumbing","diy_safe":true,"requirements":["plunger","gloves"],"steps":["remove the stopper","plunge firmly"]}`,
	}
	svc, creator := newEngine(model)

	resp, err := svc.ProcessChat(context.Background(), models.ChatRequest{UserID: "u1", Image: "aGVsbG8="})
	require.NoError(t, err)
	assert.Equal(t, models.ChatTypeDIY, resp.Type)
	assert.Contains(t, resp.Reply, "Issue identified: clogged drain")
	assert.Contains(t, resp.Reply, "- plunger")
	assert.Contains(t, resp.Reply, "- gloves")
	assert.Contains(t, resp.Reply, "1. remove the stopper")
	assert.Contains(t, resp.Reply, "2. plunge firmly")
	assert.Contains(t, resp.Reply, "book a professional anytime")
	assert.Equal(t, "aGVsbG8=", model.lastPrompt.ImageB64)
	assert.Zero(t, creator.calls, "a DIY-safe verdict must not create a booking")
}

func TestProcessChatImageRiskyCreatesBooking(t *testing.T) {
	model := &stubModel{
		configured: true,
		reply:      `{"issue":"exposed wiring","service":"Electrical","diy_safe":false}`,
	}
	svc, creator := newEngine(model)

	resp, err := svc.ProcessChat(context.Background(), models.ChatRequest{UserID: "u7", Image: "aGVsbG8="})
	require.NoError(t, err)
	assert.Equal(t, models.ChatTypeRisky, resp.Type)
	require.Equal(t, 1, creator.calls)
	assert.Equal(t, "u7", creator.lastUser)

	booked := creator.bookings[0]
	assert.Equal(t, "Electrical", booked.ServiceName)
	assert.Equal(t, "exposed wiring", booked.Details)
	assert.Contains(t, resp.Reply, "risky for DIY")
	assert.Contains(t, resp.Reply, booked.ID)
}

func TestProcessChatImageUnparsableDegrades(t *testing.T) {
	model := &stubModel{configured: true, reply: "I can't make out the photo, sorry."}
	svc, creator := newEngine(model)

	resp, err := svc.ProcessChat(context.Background(), models.ChatRequest{UserID: "u1", Image: "aGVsbG8="})
	require.NoError(t, err, "an unparsable reply is not a pipeline failure")
	assert.Equal(t, models.ChatTypeError, resp.Type)
	assert.Equal(t, "Unable to analyze the image clearly. Please try another image.", resp.Reply)
	assert.Zero(t, creator.calls)
}

func TestProcessChatUpstreamFailurePropagates(t *testing.T) {
	model := &stubModel{
		configured: true,
		err:        triage.AdvisoryUnavailableError{StatusCode: 502, Detail: "upstream overloaded"},
	}
	svc, _ := newEngine(model)

	_, err := svc.ProcessChat(context.Background(), models.ChatRequest{Message: strPtr("help")})
	var unavailable triage.AdvisoryUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 502, unavailable.StatusCode)
	assert.Equal(t, "upstream overloaded", unavailable.Detail)
}
