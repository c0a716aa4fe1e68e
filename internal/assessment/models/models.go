// Package models holds the participant aggregate and its answers.
package models

import (
	"strings"
	"time"

	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
)

// Status is the participant lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusDeleted    Status = "deleted"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusDeleted:
		return true
	}
	return false
}

// Participant is the aggregate root. Status only moves forward and never
// leaves deleted.
type Participant struct {
	ID                  id.ParticipantID
	Email               string
	AuthUserID          string
	Status              Status
	CreatedAt           time.Time
	ConsentGrantedAt    *time.Time
	AssessmentStartedAt *time.Time
	CompletedAt         *time.Time
	ManuallyDeletedAt   *time.Time
}

// NewParticipant creates a pending participant with a normalized email.
func NewParticipant(email, authUserID string, now time.Time) *Participant {
	return &Participant{
		ID:         id.NewParticipantID(),
		Email:      NormalizeEmail(email),
		AuthUserID: strings.TrimSpace(authUserID),
		Status:     StatusPending,
		CreatedAt:  now,
	}
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *Participant) IsDeleted() bool {
	return p.Status == StatusDeleted
}

// Start moves pending to in_progress and stamps consent and start times.
func (p *Participant) Start(now time.Time) error {
	if p.Status != StatusPending {
		return dErrors.New(dErrors.CodeInvalidState, "assessment can only start from pending, current status is "+string(p.Status))
	}
	p.Status = StatusInProgress
	p.ConsentGrantedAt = &now
	p.AssessmentStartedAt = &now
	return nil
}

// CanAnswer reports whether answers may be submitted.
func (p *Participant) CanAnswer() error {
	if p.Status != StatusInProgress {
		return dErrors.New(dErrors.CodeInvalidState, "answers require an assessment in progress, current status is "+string(p.Status))
	}
	return nil
}

// Complete moves in_progress to completed. Completing again keeps the
// original completion time.
func (p *Participant) Complete(now time.Time) error {
	switch p.Status {
	case StatusInProgress:
		p.Status = StatusCompleted
		p.CompletedAt = &now
		return nil
	case StatusCompleted:
		return nil
	default:
		return dErrors.New(dErrors.CodeInvalidState, "cannot complete from status "+string(p.Status))
	}
}

// MarkDeleted moves any live state to deleted.
func (p *Participant) MarkDeleted(now time.Time) error {
	if p.IsDeleted() {
		return dErrors.New(dErrors.CodeInvalidState, "participant already deleted")
	}
	p.Status = StatusDeleted
	p.ManuallyDeletedAt = &now
	return nil
}

// Answer is one stored response. RawAnswer holds ciphertext when Encrypted.
type Answer struct {
	ParticipantID  id.ParticipantID
	QuestionNumber int
	QuestionText   string
	RawAnswer      string
	Encrypted      bool
	Score          float64
	AnsweredAt     time.Time
}
