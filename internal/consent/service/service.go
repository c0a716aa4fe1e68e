// Package service implements the consent ledger: an append-only history of
// consent decisions per subject, with fail-closed checks.
package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"radar/internal/consent/models"
	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
	audit "radar/pkg/platform/audit"
	"radar/pkg/platform/sentinel"
	"radar/pkg/requestcontext"
)

// Store persists consent rows. Rows are never updated in place.
type Store interface {
	Append(ctx context.Context, record *models.Record) error
	// Latest returns sentinel.ErrNotFound when the subject has no row of type t.
	Latest(ctx context.Context, subjectID id.ParticipantID, t id.ConsentType) (*models.Record, error)
	ListBySubject(ctx context.Context, subjectID id.ParticipantID) ([]*models.Record, error)
	DeleteBySubject(ctx context.Context, subjectID id.ParticipantID) error
}

// AuditPublisher is the fail-closed compliance sink.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

var tracer = otel.Tracer("radar/consent")

// Service records and checks consent.
type Service struct {
	store   Store
	auditor AuditPublisher
	logger  *zap.Logger
}

type Option func(*Service)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) { s.auditor = p }
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record appends a consent decision. A granted=false call appends a
// revocation row; earlier rows are left untouched.
func (s *Service) Record(ctx context.Context, subjectID id.ParticipantID, t id.ConsentType, granted bool, meta models.Metadata) (*models.Record, error) {
	ctx, span := tracer.Start(ctx, "consent.Record")
	defer span.End()
	span.SetAttributes(attribute.String("consent.type", t.String()), attribute.Bool("consent.granted", granted))

	if !t.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "invalid consent type")
	}
	now := requestcontext.Now(ctx)
	record := &models.Record{
		ID:        id.NewConsentID(),
		SubjectID: subjectID,
		Type:      t,
		Granted:   granted,
		Text:      meta.Text,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		CreatedAt: now,
	}
	action := audit.EventConsentGranted
	if granted {
		record.GrantedAt = &now
	} else {
		record.RevokedAt = &now
		action = audit.EventConsentRevoked
	}

	if err := s.store.Append(ctx, record); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to record consent")
	}
	if s.auditor != nil {
		err := s.auditor.Emit(ctx, audit.Event{
			ParticipantID: subjectID,
			Action:        string(action),
			Purpose:       t.String(),
			Decision:      decision(granted),
			RequestID:     requestcontext.RequestID(ctx),
			ActorID:       requestcontext.Subject(ctx),
		})
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to audit consent")
		}
	}
	s.logger.Info("consent recorded",
		zap.String("subject_id", subjectID.String()),
		zap.String("consent_type", t.String()),
		zap.Bool("granted", granted),
	)
	return record, nil
}

// Current returns the latest record of type t, or nil when there is none or
// the latest is a revocation.
func (s *Service) Current(ctx context.Context, subjectID id.ParticipantID, t id.ConsentType) (*models.Record, error) {
	record, err := s.store.Latest(ctx, subjectID, t)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to read consent")
	}
	if !record.IsActive() {
		return nil, nil
	}
	return record, nil
}

// Require fails closed with CodeConsentRequired when Current is nil.
func (s *Service) Require(ctx context.Context, subjectID id.ParticipantID, t id.ConsentType) error {
	current, err := s.Current(ctx, subjectID, t)
	if err != nil {
		return err
	}
	if current == nil {
		return dErrors.New(dErrors.CodeConsentRequired, t.String()+" consent is required")
	}
	return nil
}

// History returns every record for the subject, oldest first.
func (s *Service) History(ctx context.Context, subjectID id.ParticipantID) ([]*models.Record, error) {
	records, err := s.store.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to list consents")
	}
	models.SortOldestFirst(records)
	return records, nil
}

// ActiveTypes lists the consent types currently granted.
func ActiveTypes(history []*models.Record) []id.ConsentType {
	var active []id.ConsentType
	for _, t := range id.AllConsentTypes() {
		if models.Latest(history, t).IsActive() {
			active = append(active, t)
		}
	}
	return active
}

// DeleteBySubject removes the subject's history. Erasure only.
func (s *Service) DeleteBySubject(ctx context.Context, subjectID id.ParticipantID) error {
	if err := s.store.DeleteBySubject(ctx, subjectID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "failed to delete consents")
	}
	return nil
}

func decision(granted bool) string {
	if granted {
		return "granted"
	}
	return "revoked"
}
