package models

import (
	"math"
	"time"

	id "radar/pkg/domain"
)

// Dimension names one axis of the radar.
type Dimension string

const (
	DimensionParticipation          Dimension = "participation"
	DimensionConsentLiteracy        Dimension = "consent_literacy"
	DimensionCommunalResponsibility Dimension = "communal_responsibility"
	DimensionInclusionAwareness     Dimension = "inclusion_awareness"
	DimensionSelfRegulation         Dimension = "self_regulation"
	DimensionOpennessToLearning     Dimension = "openness_to_learning"
	DimensionGateExperience         Dimension = "gate_experience"
)

// Dimensions returns the seven radar axes in display order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionParticipation,
		DimensionConsentLiteracy,
		DimensionCommunalResponsibility,
		DimensionInclusionAwareness,
		DimensionSelfRegulation,
		DimensionOpennessToLearning,
		DimensionGateExperience,
	}
}

func (d Dimension) IsValid() bool {
	for _, known := range Dimensions() {
		if d == known {
			return true
		}
	}
	return false
}

// Profile is a participant's aggregated radar. Every dimension is in [0,1].
type Profile struct {
	ParticipantID id.ParticipantID
	Dimensions    map[Dimension]float64
	ComputedAt    time.Time
}

// AnswerInput is one plaintext answer fed to the aggregator.
type AnswerInput struct {
	QuestionNumber int
	Text           string
}

// QuestionScore is the stored per-question contribution of an answer.
type QuestionScore struct {
	QuestionNumber int
	Score          float64
}

// Round4 rounds v to four decimal places.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// Clamp01 bounds v to [0,1]. NaN becomes 0.
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

type ProfileResponse struct {
	ParticipantID string             `json:"participant_id"`
	Dimensions    map[string]float64 `json:"dimensions"`
	ComputedAt    time.Time          `json:"computed_at"`
}

func ToResponse(p *Profile) ProfileResponse {
	dims := make(map[string]float64, len(p.Dimensions))
	for d, v := range p.Dimensions {
		dims[string(d)] = v
	}
	return ProfileResponse{
		ParticipantID: p.ParticipantID.String(),
		Dimensions:    dims,
		ComputedAt:    p.ComputedAt,
	}
}
