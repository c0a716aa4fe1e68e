package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radar/internal/consent/models"
	id "radar/pkg/domain"
	"radar/pkg/platform/sentinel"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	subject := id.NewParticipantID()
	now := time.Now().UTC()

	_, err := s.Latest(ctx, subject, id.ConsentTypeAnalytics)
	require.ErrorIs(t, err, sentinel.ErrNotFound)

	grant := &models.Record{ID: id.NewConsentID(), SubjectID: subject, Type: id.ConsentTypeAnalytics, Granted: true, GrantedAt: &now, CreatedAt: now}
	revoke := &models.Record{ID: id.NewConsentID(), SubjectID: subject, Type: id.ConsentTypeAnalytics, RevokedAt: &now, CreatedAt: now}
	require.NoError(t, s.Append(ctx, grant))
	require.NoError(t, s.Append(ctx, revoke))

	latest, err := s.Latest(ctx, subject, id.ConsentTypeAnalytics)
	require.NoError(t, err)
	assert.Equal(t, revoke.ID, latest.ID)

	// Earlier rows are not mutated by later appends.
	history, err := s.ListBySubject(ctx, subject)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Granted)
	assert.Nil(t, history[0].RevokedAt)

	require.NoError(t, s.DeleteBySubject(ctx, subject))
	history, err = s.ListBySubject(ctx, subject)
	require.NoError(t, err)
	assert.Empty(t, history)
}
