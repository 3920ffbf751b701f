package triage

import (
	"context"

	"homeserv/models"
)

// AdvisoryPrompt is a single request to the advisory model. System is empty
// for image diagnosis; ImageB64 is empty for text Q&A.
type AdvisoryPrompt struct {
	System   string
	User     string
	ImageB64 string
}

// AdvisoryModel is the pluggable external reasoning capability. Implementations
// make one outbound call per Evaluate with a fixed timeout and no retry; a
// deterministic stub substitutes for it in tests.
type AdvisoryModel interface {
	Configured() bool
	Evaluate(ctx context.Context, prompt AdvisoryPrompt) (string, error)
}

// TriageService classifies an inbound chat request and routes it to either an
// informational answer, DIY guidance, or an escalated professional booking.
type TriageService interface {
	ProcessChat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// BookingCreator is the booking capability the decision engine needs for risk
// escalations.
type BookingCreator interface {
	CreateFromTriage(userID, serviceName, issue string) (*models.Booking, error)
}

// DefaultTriageService is the production implementation.
type DefaultTriageService struct {
	Advisory   *AdvisoryClient
	BookingSvc BookingCreator
}
