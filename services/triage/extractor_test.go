package triage_test

import (
	"testing"

	"homeserv/services/triage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDecisionFromWrappedReply(t *testing.T) {
	raw := `Sure! {"issue":"leak","service":"Plumbing","diy_safe":true,"steps":["a","b"]} thanks`

	decision, err := triage.ExtractDecision(raw)
	require.NoError(t, err)
	assert.Equal(t, "leak", decision.Issue)
	assert.Equal(t, "Plumbing", decision.Service)
	assert.True(t, decision.DIYSafe)
	assert.Equal(t, []string{"a", "b"}, decision.Steps)
	assert.Empty(t, decision.Requirements)
}

func TestExtractDecisionPureJSON(t *testing.T) {
	raw := `{"issue":"sparking outlet","service":"Electrical","diy_safe":false}`

	decision, err := triage.ExtractDecision(raw)
	require.NoError(t, err)
	assert.Equal(t, "sparking outlet", decision.Issue)
	assert.False(t, decision.DIYSafe)
}

func TestExtractDecisionNoBraces(t *testing.T) {
	_, err := triage.ExtractDecision("I cannot tell what the image shows.")
	assert.ErrorIs(t, err, triage.ErrUnparsableAdvisory)
}

func TestExtractDecisionMalformedJSON(t *testing.T) {
	_, err := triage.ExtractDecision(`here: {"issue": "leak", "diy_safe": } done`)
	assert.ErrorIs(t, err, triage.ErrUnparsableAdvisory)
}

func TestExtractDecisionReversedBraces(t *testing.T) {
	_, err := triage.ExtractDecision(`} nothing useful {`)
	assert.ErrorIs(t, err, triage.ErrUnparsableAdvisory)
}
