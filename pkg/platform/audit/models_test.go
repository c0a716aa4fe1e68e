package audit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "radar/pkg/domain"
)

func TestPayloadCarriesNoFreeText(t *testing.T) {
	e := Event{
		ID:            uuid.New(),
		Timestamp:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		ParticipantID: id.NewParticipantID(),
		Action:        string(EventParticipantErased),
		ActorID:       "purge",
	}
	body, err := MarshalPayload(e)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"Category":"compliance"`)

	decoded, err := UnmarshalPayload(body)
	require.NoError(t, err)
	assert.Equal(t, e.ParticipantID, decoded.ParticipantID)
	assert.Equal(t, e.Action, decoded.Action)
	assert.True(t, e.Timestamp.Equal(decoded.Timestamp))
}

func TestCategory(t *testing.T) {
	assert.Equal(t, CategoryCompliance, EventConsentRevoked.Category())
	assert.Equal(t, CategoryOperations, EventAssessmentStarted.Category())
	assert.Equal(t, CategoryOperations, AuditEvent("unknown").Category())
}
