package models

// ChatRequest is the inbound triage payload. Message is a pointer so an absent
// message can be told apart from a present-but-blank one.
type ChatRequest struct {
	Message *string `json:"message"`
	Image   string  `json:"image"` // base64-encoded image payload
	UserID  string  `json:"user_id"`
}

// Chat reply types.
const (
	ChatTypeText  = "text"
	ChatTypeDIY   = "diy"
	ChatTypeRisky = "risky"
	ChatTypeError = "error"
)

// ChatResponse is the typed reply returned to the frontend.
type ChatResponse struct {
	Type  string `json:"type"`
	Reply string `json:"reply"`
}

// TriageDecision is the structured verdict parsed from the advisory model's
// reply to an image diagnosis. Requirements and Steps are only populated when
// the model judges the issue safe to fix without a professional.
type TriageDecision struct {
	Issue        string   `json:"issue"`
	Service      string   `json:"service"`
	DIYSafe      bool     `json:"diy_safe"`
	Requirements []string `json:"requirements,omitempty"`
	Steps        []string `json:"steps,omitempty"`
}
