package models

import (
	"net/mail"
	"strings"
	"time"

	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
)

const (
	maxEmailLength  = 254
	maxAnswerLength = 10000
)

type CreateParticipantRequest struct {
	Email      string `json:"email"`
	AuthUserID string `json:"auth_user_id,omitempty"`
}

func (r *CreateParticipantRequest) Normalize() {
	if r == nil {
		return
	}
	r.Email = NormalizeEmail(r.Email)
	r.AuthUserID = strings.TrimSpace(r.AuthUserID)
}

// Validate follows the order size, required, syntax.
func (r *CreateParticipantRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if len(r.Email) > maxEmailLength {
		return dErrors.New(dErrors.CodeInvalidInput, "email is too long")
	}
	if r.Email == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "email is required")
	}
	addr, err := mail.ParseAddress(r.Email)
	if err != nil || addr.Address != r.Email {
		return dErrors.New(dErrors.CodeInvalidInput, "email is not a valid address")
	}
	return nil
}

// StartRequest carries the consent text shown when the participant agreed
// to the assessment.
type StartRequest struct {
	ConsentText string `json:"consent_text"`
}

func (r *StartRequest) Normalize() {
	if r == nil {
		return
	}
	r.ConsentText = strings.TrimSpace(r.ConsentText)
}

func (r *StartRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.ConsentText == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "consent_text is required")
	}
	return nil
}

type SubmitAnswerBody struct {
	Answer string `json:"answer"`
}

func (r *SubmitAnswerBody) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if len(r.Answer) > maxAnswerLength {
		return dErrors.New(dErrors.CodeInvalidInput, "answer is too long")
	}
	if strings.TrimSpace(r.Answer) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "answer is required")
	}
	return nil
}

// SubmitAnswerRequest is the service input. Sensitive comes from the
// questionnaire, never from the client.
type SubmitAnswerRequest struct {
	ParticipantID  id.ParticipantID
	QuestionNumber int
	Text           string
	Sensitive      bool
}

type ParticipantResponse struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
	ConsentGrantedAt    *time.Time `json:"consent_granted_at,omitempty"`
	AssessmentStartedAt *time.Time `json:"assessment_started_at,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	ManuallyDeletedAt   *time.Time `json:"manually_deleted_at,omitempty"`
}

func ToResponse(p *Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:                  p.ID.String(),
		Email:               p.Email,
		Status:              string(p.Status),
		CreatedAt:           p.CreatedAt,
		ConsentGrantedAt:    p.ConsentGrantedAt,
		AssessmentStartedAt: p.AssessmentStartedAt,
		CompletedAt:         p.CompletedAt,
		ManuallyDeletedAt:   p.ManuallyDeletedAt,
	}
}

// CreateParticipantResponse carries a participant-scoped bearer token for
// the organizer to hand over.
type CreateParticipantResponse struct {
	ParticipantResponse
	Created        bool      `json:"created"`
	AccessToken    string    `json:"access_token"`
	TokenExpiresAt time.Time `json:"token_expires_at"`
}

// SubmitAnswerResponse never echoes the answer text.
type SubmitAnswerResponse struct {
	QuestionNumber int       `json:"question_number"`
	Encrypted      bool      `json:"encrypted"`
	AnsweredAt     time.Time `json:"answered_at"`
}

type QuestionResponse struct {
	Number    int    `json:"number"`
	Text      string `json:"text"`
	Required  bool   `json:"required"`
	Sensitive bool   `json:"sensitive"`
}

type QuestionnaireResponse struct {
	Questions []QuestionResponse `json:"questions"`
}
