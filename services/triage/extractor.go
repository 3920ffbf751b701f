package triage

import (
	"encoding/json"
	"strings"

	"homeserv/models"
)

// ExtractDecision recovers a triage decision from the model's free-form
// reply. The model is instructed to answer with pure JSON but is not
// guaranteed to: it may wrap the object in commentary. The largest
// brace-delimited region is taken as the candidate object.
func ExtractDecision(raw string) (*models.TriageDecision, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return nil, ErrUnparsableAdvisory
	}

	var decision models.TriageDecision
	if err := json.Unmarshal([]byte(raw[start:end+1]), &decision); err != nil {
		return nil, ErrUnparsableAdvisory
	}
	return &decision, nil
}
