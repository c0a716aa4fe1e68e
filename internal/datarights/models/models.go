package models

import (
	"time"

	assessmentModels "radar/internal/assessment/models"
	consentModels "radar/internal/consent/models"
	flagModels "radar/internal/flags/models"
	radarModels "radar/internal/radar/models"
	"radar/pkg/platform/middleware/metadata"
)

// Erasure steps, in the order they run. The participant row goes last.
const (
	StepFlags       = "flags"
	StepAnswers     = "answers"
	StepRadar       = "radar"
	StepRadarCache  = "radar_cache"
	StepConsents    = "consents"
	StepParticipant = "participant"
)

// ExportedAnswer carries the plaintext answer. Only exports decrypt.
type ExportedAnswer struct {
	QuestionNumber int       `json:"question_number"`
	QuestionText   string    `json:"question_text"`
	Answer         string    `json:"answer"`
	Encrypted      bool      `json:"stored_encrypted"`
	AnsweredAt     time.Time `json:"answered_at"`
}

// ExportedConsent includes the capture metadata the subject is entitled to see.
type ExportedConsent struct {
	consentModels.RecordResponse
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Device    string `json:"device,omitempty"`
}

// Bundle is everything held about one participant.
type Bundle struct {
	Participant assessmentModels.ParticipantResponse `json:"participant"`
	Radar       *radarModels.ProfileResponse         `json:"radar"`
	Answers     []ExportedAnswer                     `json:"answers"`
	Flags       []flagModels.FlagResponse            `json:"flags"`
	Consents    []ExportedConsent                    `json:"consents"`
	ExportedAt  time.Time                            `json:"exported_at"`
}

func NewExportedConsent(r *consentModels.Record) ExportedConsent {
	return ExportedConsent{
		RecordResponse: consentModels.ToResponse(r),
		IPAddress:      r.IPAddress,
		UserAgent:      r.UserAgent,
		Device:         metadata.DeviceLabel(r.UserAgent),
	}
}

// StepResult records the outcome of one erasure step. Error is a safe
// summary, never the underlying driver message.
type StepResult struct {
	Step    string `json:"step"`
	OK      bool   `json:"ok"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErasureReport is Complete only when every step, the root row included,
// succeeded.
type ErasureReport struct {
	ParticipantID string       `json:"participant_id"`
	Steps         []StepResult `json:"steps"`
	Complete      bool         `json:"complete"`
	ErasedAt      time.Time    `json:"erased_at"`
}

// FailedSteps lists the names of steps that ran and failed.
func (r *ErasureReport) FailedSteps() []string {
	var failed []string
	for _, s := range r.Steps {
		if !s.OK && !s.Skipped {
			failed = append(failed, s.Step)
		}
	}
	return failed
}

// PurgeReport summarizes one purge run.
type PurgeReport struct {
	Cutoff     time.Time `json:"cutoff"`
	Candidates int       `json:"candidates"`
	Erased     int       `json:"erased"`
	Incomplete int       `json:"incomplete"`
	Failed     int       `json:"failed"`
}
