package models

import (
	"strings"
	"time"

	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
)

// RecordConsentRequest is the body of POST /participants/{id}/consents.
type RecordConsentRequest struct {
	Type    string `json:"consent_type"`
	Granted *bool  `json:"granted"`
	Text    string `json:"consent_text"`
}

func (r *RecordConsentRequest) Normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Text = strings.TrimSpace(r.Text)
}

// Validate returns the parsed consent type.
func (r *RecordConsentRequest) Validate() (id.ConsentType, error) {
	if r.Granted == nil {
		return "", dErrors.New(dErrors.CodeBadRequest, "granted is required")
	}
	t, err := id.ParseConsentType(r.Type)
	if err != nil {
		return "", err
	}
	if *r.Granted && r.Text == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "consent_text is required when granting")
	}
	return t, nil
}

// RecordResponse is the wire form of a Record. IP and user agent stay
// internal except in data exports.
type RecordResponse struct {
	ID        string     `json:"id"`
	Type      string     `json:"consent_type"`
	Granted   bool       `json:"granted"`
	GrantedAt *time.Time `json:"granted_at,omitempty"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	Text      string     `json:"consent_text"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToResponse(r *Record) RecordResponse {
	return RecordResponse{
		ID:        r.ID.String(),
		Type:      r.Type.String(),
		Granted:   r.Granted,
		GrantedAt: r.GrantedAt,
		RevokedAt: r.RevokedAt,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

// HistoryResponse lists every record oldest first, with the active types.
type HistoryResponse struct {
	Records []RecordResponse `json:"records"`
	Active  []string         `json:"active"`
}
