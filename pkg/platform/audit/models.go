package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	id "radar/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance:
	// consent changes, participant creation and erasure, data subject rights.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers routine lifecycle activity.
	CategoryOperations EventCategory = "operations"
)

type AuditEvent string

const (
	// Participant events
	EventParticipantCreated AuditEvent = "participant_created"
	EventAssessmentStarted  AuditEvent = "assessment_started"
	EventAssessmentComplete AuditEvent = "assessment_completed"

	// Consent events
	EventConsentGranted AuditEvent = "consent_granted"
	EventConsentRevoked AuditEvent = "consent_revoked"

	// Data rights events
	EventDeletionRequested AuditEvent = "deletion_requested"
	EventParticipantErased AuditEvent = "participant_erased"
	EventErasureIncomplete AuditEvent = "erasure_incomplete"
	EventDataExported      AuditEvent = "data_exported"

	// Organizer events
	EventFlagReviewed         AuditEvent = "flag_reviewed"
	EventAdminParticipantRead AuditEvent = "admin_participant_read"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventParticipantCreated: CategoryCompliance,
	EventConsentGranted:     CategoryCompliance,
	EventConsentRevoked:     CategoryCompliance,
	EventDeletionRequested:  CategoryCompliance,
	EventParticipantErased:  CategoryCompliance,
	EventErasureIncomplete:  CategoryCompliance,
	EventDataExported:       CategoryCompliance,

	EventAdminParticipantRead: CategoryCompliance,

	EventAssessmentStarted:  CategoryOperations,
	EventAssessmentComplete: CategoryOperations,
	EventFlagReviewed:       CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Event is emitted from domain logic to capture key actions. It never carries
// answer text, email addresses or names; the participant ID is the only link
// back to a person.
type Event struct {
	ID            uuid.UUID
	Timestamp     time.Time
	ParticipantID id.ParticipantID
	Action        string
	Purpose       string
	Decision      string
	Reason        string
	RequestID     string
	// ActorID tracks who performed the action when different from the
	// participant (organizer reviews, admin erasure, purge job).
	ActorID string
}

// Category derives the category from the action.
func (e Event) Category() EventCategory {
	return AuditEvent(e.Action).Category()
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByParticipant(ctx context.Context, participantID id.ParticipantID) ([]Event, error)
}

// OutboxEntry is an event waiting to be relayed to the broker.
type OutboxEntry struct {
	ID          uuid.UUID
	AggregateID string
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
}

// Outbox is the relay-side view of a Store.
type Outbox interface {
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxEntry, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID) error
}

// payload is the JSON structure published to the broker.
type payload struct {
	ID            string `json:"ID"`
	Category      string `json:"Category"`
	Timestamp     string `json:"Timestamp"`
	ParticipantID string `json:"ParticipantID,omitempty"`
	Action        string `json:"Action"`
	Purpose       string `json:"Purpose,omitempty"`
	Decision      string `json:"Decision,omitempty"`
	Reason        string `json:"Reason,omitempty"`
	RequestID     string `json:"RequestID,omitempty"`
	ActorID       string `json:"ActorID,omitempty"`
}

// MarshalPayload encodes an event for the outbox.
func MarshalPayload(e Event) ([]byte, error) {
	p := payload{
		ID:        e.ID.String(),
		Category:  string(e.Category()),
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
		Action:    e.Action,
		Purpose:   e.Purpose,
		Decision:  e.Decision,
		Reason:    e.Reason,
		RequestID: e.RequestID,
		ActorID:   e.ActorID,
	}
	if !e.ParticipantID.IsNil() {
		p.ParticipantID = e.ParticipantID.String()
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal audit payload: %w", err)
	}
	return b, nil
}

// UnmarshalPayload decodes an outbox payload back into an Event.
func UnmarshalPayload(b []byte) (Event, error) {
	var p payload
	if err := json.Unmarshal(b, &p); err != nil {
		return Event{}, fmt.Errorf("unmarshal audit payload: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, p.Timestamp)
	if err != nil {
		return Event{}, fmt.Errorf("parse audit timestamp: %w", err)
	}
	e := Event{
		Timestamp: ts,
		Action:    p.Action,
		Purpose:   p.Purpose,
		Decision:  p.Decision,
		Reason:    p.Reason,
		RequestID: p.RequestID,
		ActorID:   p.ActorID,
	}
	if e.ID, err = uuid.Parse(p.ID); err != nil {
		return Event{}, fmt.Errorf("parse audit id: %w", err)
	}
	if p.ParticipantID != "" {
		pid, err := uuid.Parse(p.ParticipantID)
		if err != nil {
			return Event{}, fmt.Errorf("parse participant id: %w", err)
		}
		e.ParticipantID = id.ParticipantID(pid)
	}
	return e, nil
}
