// Package service serves the participant's access and erasure rights over
// every record the lifecycle keeps about them.
package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	assessmentModels "radar/internal/assessment/models"
	consentModels "radar/internal/consent/models"
	flagModels "radar/internal/flags/models"
	"radar/internal/platform/metrics"
	radarModels "radar/internal/radar/models"
	id "radar/pkg/domain"
	audit "radar/pkg/platform/audit"
	"radar/pkg/platform/tx"
)

// ParticipantStore is the subset of the participant store erasure needs.
// FindByID includes deleted rows.
type ParticipantStore interface {
	FindByID(ctx context.Context, participantID id.ParticipantID) (*assessmentModels.Participant, error)
	Update(ctx context.Context, p *assessmentModels.Participant) error
	Delete(ctx context.Context, participantID id.ParticipantID) error
	ListDeletedBefore(ctx context.Context, cutoff time.Time, limit int) ([]id.ParticipantID, error)
}

type AnswerStore interface {
	ListByParticipant(ctx context.Context, participantID id.ParticipantID) ([]*assessmentModels.Answer, error)
	DeleteByParticipant(ctx context.Context, participantID id.ParticipantID) error
}

type ProfileStore interface {
	FindByParticipant(ctx context.Context, participantID id.ParticipantID) (*radarModels.Profile, error)
	DeleteByParticipant(ctx context.Context, participantID id.ParticipantID) error
}

type ProfileCache interface {
	Delete(ctx context.Context, participantID id.ParticipantID) error
}

type FlagLedger interface {
	ListForParticipant(ctx context.Context, participantID id.ParticipantID) ([]*flagModels.Flag, error)
	DeleteByParticipant(ctx context.Context, participantID id.ParticipantID) error
}

type ConsentLedger interface {
	History(ctx context.Context, subjectID id.ParticipantID) ([]*consentModels.Record, error)
	DeleteBySubject(ctx context.Context, subjectID id.ParticipantID) error
}

type Decrypter interface {
	Decrypt(ciphertext string) (string, error)
}

// AuditPublisher is the fail-closed compliance sink.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

var tracer = otel.Tracer("radar/datarights")

const (
	defaultPurgeConcurrency = 4
	defaultPurgeBatch       = 500
)

// Dependencies are the collaborators every Service needs.
type Dependencies struct {
	Participants ParticipantStore
	Answers      AnswerStore
	Profiles     ProfileStore
	Flags        FlagLedger
	Consents     ConsentLedger
	Cipher       Decrypter
	Tx           tx.Runner
}

type Service struct {
	participants     ParticipantStore
	answers          AnswerStore
	profiles         ProfileStore
	flags            FlagLedger
	consents         ConsentLedger
	cipher           Decrypter
	tx               tx.Runner
	cache            ProfileCache
	auditor          AuditPublisher
	metrics          *metrics.Metrics
	logger           *zap.Logger
	purgeConcurrency int
	purgeBatch       int
}

type Option func(*Service)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) { s.auditor = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithCache(c ProfileCache) Option {
	return func(s *Service) { s.cache = c }
}

// WithPurgeLimits bounds one purge run: how many erasures run at once and how
// many candidates are taken per run. Non-positive values keep the defaults.
func WithPurgeLimits(concurrency, batch int) Option {
	return func(s *Service) {
		if concurrency > 0 {
			s.purgeConcurrency = concurrency
		}
		if batch > 0 {
			s.purgeBatch = batch
		}
	}
}

func New(deps Dependencies, opts ...Option) (*Service, error) {
	switch {
	case deps.Participants == nil:
		return nil, fmt.Errorf("participant store is required")
	case deps.Answers == nil:
		return nil, fmt.Errorf("answer store is required")
	case deps.Profiles == nil:
		return nil, fmt.Errorf("profile store is required")
	case deps.Flags == nil:
		return nil, fmt.Errorf("flag ledger is required")
	case deps.Consents == nil:
		return nil, fmt.Errorf("consent ledger is required")
	case deps.Cipher == nil:
		return nil, fmt.Errorf("answer cipher is required")
	case deps.Tx == nil:
		return nil, fmt.Errorf("transaction runner is required")
	}
	s := &Service{
		participants:     deps.Participants,
		answers:          deps.Answers,
		profiles:         deps.Profiles,
		flags:            deps.Flags,
		consents:         deps.Consents,
		cipher:           deps.Cipher,
		tx:               deps.Tx,
		logger:           zap.NewNop(),
		purgeConcurrency: defaultPurgeConcurrency,
		purgeBatch:       defaultPurgeBatch,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
