package models

import (
	"time"

	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
)

// Severity is ordered low < medium < high.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

var severityRank = map[Severity]int{
	SeverityLow:    1,
	SeverityMedium: 2,
	SeverityHigh:   3,
}

func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if _, ok := severityRank[sev]; !ok {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid severity: "+s)
	}
	return sev, nil
}

// Rank returns 0 for unknown severities.
func (s Severity) Rank() int { return severityRank[s] }

// Finding is what a deriver produces for one answer, before it is persisted.
type Finding struct {
	QuestionNumber int
	Type           string
	Severity       Severity
	Reason         string
}

// Flag is a persisted finding. Only ReviewedAt and ReviewedBy ever change.
type Flag struct {
	ID             id.FlagID
	ParticipantID  id.ParticipantID
	QuestionNumber int
	Type           string
	Severity       Severity
	Reason         string
	CreatedAt      time.Time
	ReviewedAt     *time.Time
	ReviewedBy     string
}

func (f *Flag) IsReviewed() bool { return f.ReviewedAt != nil }

// FlagResponse is the organizer-facing wire form.
type FlagResponse struct {
	ID             string     `json:"id"`
	QuestionNumber int        `json:"question_number"`
	Type           string     `json:"flag_type"`
	Severity       string     `json:"severity"`
	Reason         string     `json:"flag_reason"`
	CreatedAt      time.Time  `json:"created_at"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy     string     `json:"reviewed_by,omitempty"`
}

func ToResponse(f *Flag) FlagResponse {
	return FlagResponse{
		ID:             f.ID.String(),
		QuestionNumber: f.QuestionNumber,
		Type:           f.Type,
		Severity:       string(f.Severity),
		Reason:         f.Reason,
		CreatedAt:      f.CreatedAt,
		ReviewedAt:     f.ReviewedAt,
		ReviewedBy:     f.ReviewedBy,
	}
}
