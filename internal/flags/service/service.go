// Package service persists derived flags and serves the organizer review flow.
package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"radar/internal/flags/engine"
	"radar/internal/flags/models"
	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
	audit "radar/pkg/platform/audit"
	"radar/pkg/platform/sentinel"
	"radar/pkg/requestcontext"
)

// Store persists flags.
type Store interface {
	// ReplaceUnreviewed deletes unreviewed flags for (participant, question)
	// and inserts flags. Reviewed flags are kept.
	ReplaceUnreviewed(ctx context.Context, participantID id.ParticipantID, questionNumber int, flags []*models.Flag) error
	ListByParticipant(ctx context.Context, participantID id.ParticipantID) ([]*models.Flag, error)
	FindByID(ctx context.Context, flagID id.FlagID) (*models.Flag, error)
	// MarkReviewed returns sentinel.ErrAlreadyUsed when the flag was reviewed before.
	MarkReviewed(ctx context.Context, flagID id.FlagID, reviewer string, at time.Time) error
	DeleteByParticipant(ctx context.Context, participantID id.ParticipantID) error
}

// AuditPublisher records organizer reviews.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

type Service struct {
	deriver engine.Deriver
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

func New(deriver engine.Deriver, store Store, opts ...Option) *Service {
	s := &Service{deriver: deriver, store: store, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Derive runs the deriver on plaintext and stamps persistent identities.
// Nothing is stored.
func (s *Service) Derive(ctx context.Context, participantID id.ParticipantID, questionNumber int, plaintext string) []*models.Flag {
	findings := s.deriver.Derive(questionNumber, plaintext)
	now := requestcontext.Now(ctx)
	out := make([]*models.Flag, 0, len(findings))
	for _, f := range findings {
		out = append(out, &models.Flag{
			ID:             id.NewFlagID(),
			ParticipantID:  participantID,
			QuestionNumber: f.QuestionNumber,
			Type:           f.Type,
			Severity:       f.Severity,
			Reason:         f.Reason,
			CreatedAt:      now,
		})
	}
	return out
}

// Replace swaps the unreviewed flag set for one question.
func (s *Service) Replace(ctx context.Context, participantID id.ParticipantID, questionNumber int, flags []*models.Flag) error {
	if err := s.store.ReplaceUnreviewed(ctx, participantID, questionNumber, flags); err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "failed to save flags")
	}
	return nil
}

// ListForParticipant orders flags by question number, then creation time.
func (s *Service) ListForParticipant(ctx context.Context, participantID id.ParticipantID) ([]*models.Flag, error) {
	flags, err := s.store.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to list flags")
	}
	sort.SliceStable(flags, func(i, j int) bool {
		if flags[i].QuestionNumber != flags[j].QuestionNumber {
			return flags[i].QuestionNumber < flags[j].QuestionNumber
		}
		return flags[i].CreatedAt.Before(flags[j].CreatedAt)
	})
	return flags, nil
}

// Get returns one flag.
func (s *Service) Get(ctx context.Context, flagID id.FlagID) (*models.Flag, error) {
	flag, err := s.store.FindByID(ctx, flagID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "flag not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to load flag")
	}
	return flag, nil
}

// Review stamps reviewed_at and reviewed_by once. A second review is a conflict.
func (s *Service) Review(ctx context.Context, flagID id.FlagID, reviewer string) (*models.Flag, error) {
	if reviewer == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "reviewer identity required")
	}
	flag, err := s.Get(ctx, flagID)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	if err := s.store.MarkReviewed(ctx, flagID, reviewer, now); err != nil {
		switch {
		case errors.Is(err, sentinel.ErrAlreadyUsed):
			return nil, dErrors.New(dErrors.CodeConflict, "flag already reviewed")
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, dErrors.New(dErrors.CodeNotFound, "flag not found")
		default:
			return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to review flag")
		}
	}
	flag.ReviewedAt = &now
	flag.ReviewedBy = reviewer

	if s.auditor != nil {
		if err := s.auditor.Emit(ctx, audit.Event{
			ParticipantID: flag.ParticipantID,
			Action:        string(audit.EventFlagReviewed),
			Reason:        flag.Type,
			ActorID:       reviewer,
			RequestID:     requestcontext.RequestID(ctx),
		}); err != nil {
			s.logger.Warn("failed to audit flag review", zap.Error(err))
		}
	}
	return flag, nil
}

// DeleteByParticipant removes every flag, reviewed or not. Erasure only.
func (s *Service) DeleteByParticipant(ctx context.Context, participantID id.ParticipantID) error {
	if err := s.store.DeleteByParticipant(ctx, participantID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "failed to delete flags")
	}
	return nil
}
