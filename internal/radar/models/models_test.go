package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	id "radar/pkg/domain"
)

func TestDimensions(t *testing.T) {
	dims := Dimensions()
	assert.Len(t, dims, 7)
	for _, d := range dims {
		assert.True(t, d.IsValid())
	}
	assert.False(t, Dimension("charisma").IsValid())
}

func TestRoundAndClamp(t *testing.T) {
	assert.Equal(t, 0.3333, Round4(1.0/3))
	assert.Equal(t, 0.6667, Round4(2.0/3))
	assert.Equal(t, 0.0, Clamp01(-0.2))
	assert.Equal(t, 1.0, Clamp01(1.7))
	assert.Equal(t, 0.0, Clamp01(math.NaN()))
	assert.Equal(t, 0.25, Clamp01(0.25))
}

func TestToResponse(t *testing.T) {
	pid := id.NewParticipantID()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	resp := ToResponse(&Profile{
		ParticipantID: pid,
		Dimensions:    map[Dimension]float64{DimensionParticipation: 0.5},
		ComputedAt:    now,
	})
	assert.Equal(t, pid.String(), resp.ParticipantID)
	assert.Equal(t, map[string]float64{"participation": 0.5}, resp.Dimensions)
	assert.Equal(t, now, resp.ComputedAt)
}
