package triage

import (
	"context"
	"fmt"
	"strings"

	"homeserv/models"
	"homeserv/utils"

	"go.uber.org/zap"
)

// NewDefaultTriageService wires the decision engine over an advisory client
// and the booking capability used for risk escalations.
func NewDefaultTriageService(advisory *AdvisoryClient, bookingSvc BookingCreator) *DefaultTriageService {
	return &DefaultTriageService{Advisory: advisory, BookingSvc: bookingSvc}
}

// ProcessChat runs the triage pipeline: classify, consult the advisory model,
// and branch into an informational answer, DIY guidance, or an escalated
// booking.
func (s *DefaultTriageService) ProcessChat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if !s.Advisory.Configured() {
		return nil, ErrConfigurationMissing
	}

	cls := Classify(req)
	switch cls.Kind {
	case KindImage:
		return s.handleImage(ctx, req.UserID, cls.Image)
	case KindText:
		return s.handleText(ctx, cls.Message)
	default:
		return nil, cls.Reason
	}
}

func (s *DefaultTriageService) handleText(ctx context.Context, message string) (*models.ChatResponse, error) {
	reply, err := s.Advisory.AskText(ctx, message)
	if err != nil {
		return nil, err
	}
	return &models.ChatResponse{Type: models.ChatTypeText, Reply: reply}, nil
}

func (s *DefaultTriageService) handleImage(ctx context.Context, userID, imageB64 string) (*models.ChatResponse, error) {
	raw, err := s.Advisory.AskImage(ctx, imageB64)
	if err != nil {
		return nil, err
	}

	decision, err := ExtractDecision(raw)
	if err != nil {
		// Ambiguous model output degrades to a retry prompt, not an error.
		utils.GetLogger().Warn("Unparsable advisory reply", zap.String("raw", raw))
		return &models.ChatResponse{
			Type:  models.ChatTypeError,
			Reply: "Unable to analyze the image clearly. Please try another image.",
		}, nil
	}

	if decision.DIYSafe {
		return &models.ChatResponse{
			Type:  models.ChatTypeDIY,
			Reply: composeDIYReply(decision),
		}, nil
	}

	booked, err := s.BookingSvc.CreateFromTriage(userID, decision.Service, decision.Issue)
	if err != nil {
		return nil, fmt.Errorf("failed to escalate triage booking: %w", err)
	}
	reply := fmt.Sprintf(
		"The issue appears risky for DIY.\nA professional booking has been created.\nBooking ID: %s",
		booked.ID,
	)
	return &models.ChatResponse{Type: models.ChatTypeRisky, Reply: reply}, nil
}

// composeDIYReply enumerates the requirements and numbered steps of a
// DIY-safe decision.
func composeDIYReply(decision *models.TriageDecision) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Issue identified: %s\n", decision.Issue)

	if len(decision.Requirements) > 0 {
		sb.WriteString("\nYou will need:\n")
		for _, requirement := range decision.Requirements {
			fmt.Fprintf(&sb, "- %s\n", requirement)
		}
	}

	sb.WriteString("\nDIY Steps:\n")
	for i, step := range decision.Steps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}

	sb.WriteString("\nIf the issue continues, you can book a professional anytime.")
	return sb.String()
}
