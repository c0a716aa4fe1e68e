package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radar/internal/radar/models"
	id "radar/pkg/domain"
	"radar/pkg/platform/sentinel"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	pid := id.NewParticipantID()

	_, err := s.FindByParticipant(ctx, pid)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	first := &models.Profile{
		ParticipantID: pid,
		Dimensions:    map[models.Dimension]float64{models.DimensionParticipation: 0.2},
		ComputedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Upsert(ctx, first))
	first.Dimensions[models.DimensionParticipation] = 0.9

	got, err := s.FindByParticipant(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, 0.2, got.Dimensions[models.DimensionParticipation])

	second := &models.Profile{
		ParticipantID: pid,
		Dimensions:    map[models.Dimension]float64{models.DimensionParticipation: 0.7},
		ComputedAt:    first.ComputedAt.Add(time.Hour),
	}
	require.NoError(t, s.Upsert(ctx, second))
	got, err = s.FindByParticipant(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, 0.7, got.Dimensions[models.DimensionParticipation])
	assert.Equal(t, second.ComputedAt, got.ComputedAt)

	require.NoError(t, s.DeleteByParticipant(ctx, pid))
	_, err = s.FindByParticipant(ctx, pid)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
