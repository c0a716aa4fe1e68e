package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radar/internal/assessment/models"
	"radar/pkg/platform/sentinel"
)

var t0 = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func TestParticipantStoreLiveEmailIsUnique(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryParticipantStore()

	first := models.NewParticipant("a@b.org", "", t0)
	require.NoError(t, s.Create(ctx, first))

	dup := models.NewParticipant("a@b.org", "", t0)
	assert.ErrorIs(t, s.Create(ctx, dup), sentinel.ErrConflict)

	require.NoError(t, first.MarkDeleted(t0))
	require.NoError(t, s.Update(ctx, first))

	_, err := s.FindLiveByEmail(ctx, "a@b.org")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	require.NoError(t, s.Create(ctx, dup), "a deleted participant frees the email")

	live, err := s.FindLiveByEmail(ctx, "a@b.org")
	require.NoError(t, err)
	assert.Equal(t, dup.ID, live.ID)

	stored, err := s.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeleted, stored.Status)
}

func TestParticipantStoreUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryParticipantStore()
	p := models.NewParticipant("x@y.org", "", t0)

	assert.ErrorIs(t, s.Update(ctx, p), sentinel.ErrNotFound)
	require.NoError(t, s.Create(ctx, p))

	require.NoError(t, p.Start(t0))
	got, _ := s.FindByID(ctx, p.ID)
	assert.Equal(t, models.StatusPending, got.Status, "callers hold copies")

	require.NoError(t, s.Update(ctx, p))
	got, _ = s.FindByID(ctx, p.ID)
	assert.Equal(t, models.StatusInProgress, got.Status)

	require.NoError(t, s.Delete(ctx, p.ID))
	_, err := s.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestListDeletedBefore(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryParticipantStore()

	mk := func(email string, deletedAt *time.Time) *models.Participant {
		p := models.NewParticipant(email, "", t0)
		if deletedAt != nil {
			require.NoError(t, p.MarkDeleted(*deletedAt))
		}
		require.NoError(t, s.Create(ctx, p))
		return p
	}
	d1, d2, d3 := t0.Add(time.Hour), t0.Add(2*time.Hour), t0.Add(48*time.Hour)
	second := mk("b@x.org", &d2)
	first := mk("a@x.org", &d1)
	mk("c@x.org", &d3)
	mk("live@x.org", nil)

	ids, err := s.ListDeletedBefore(ctx, t0.Add(24*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, first.ID, ids[0])
	assert.Equal(t, second.ID, ids[1])

	ids, err = s.ListDeletedBefore(ctx, t0.Add(24*time.Hour), 1)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestAnswerStoreLastWriteWins(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryAnswerStore()
	p := models.NewParticipant("a@b.org", "", t0)

	require.NoError(t, s.Upsert(ctx, &models.Answer{ParticipantID: p.ID, QuestionNumber: 2, RawAnswer: "second", AnsweredAt: t0}))
	require.NoError(t, s.Upsert(ctx, &models.Answer{ParticipantID: p.ID, QuestionNumber: 1, RawAnswer: "old", AnsweredAt: t0}))
	require.NoError(t, s.Upsert(ctx, &models.Answer{ParticipantID: p.ID, QuestionNumber: 1, RawAnswer: "new", AnsweredAt: t0.Add(time.Minute)}))

	answers, err := s.ListByParticipant(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, 1, answers[0].QuestionNumber)
	assert.Equal(t, "new", answers[0].RawAnswer)
	assert.Equal(t, 2, answers[1].QuestionNumber)

	require.NoError(t, s.DeleteByParticipant(ctx, p.ID))
	answers, err = s.ListByParticipant(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, answers)
}
