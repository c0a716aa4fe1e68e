// Package service runs the participant lifecycle: creation, the consented
// start of an assessment, answer submission, completion and deletion
// requests. Writes that touch more than one store run in a single
// transaction.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"radar/internal/assessment/models"
	consentModels "radar/internal/consent/models"
	flagModels "radar/internal/flags/models"
	"radar/internal/platform/metrics"
	"radar/internal/radar/aggregator"
	radarModels "radar/internal/radar/models"
	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
	audit "radar/pkg/platform/audit"
	"radar/pkg/platform/sentinel"
	"radar/pkg/platform/tx"
	"radar/pkg/requestcontext"
)

// ParticipantStore persists participants. FindByID includes deleted rows.
type ParticipantStore interface {
	Create(ctx context.Context, p *models.Participant) error
	FindByID(ctx context.Context, participantID id.ParticipantID) (*models.Participant, error)
	FindByIDForUpdate(ctx context.Context, participantID id.ParticipantID) (*models.Participant, error)
	FindLiveByEmail(ctx context.Context, email string) (*models.Participant, error)
	Update(ctx context.Context, p *models.Participant) error
}

type AnswerStore interface {
	Upsert(ctx context.Context, a *models.Answer) error
	ListByParticipant(ctx context.Context, participantID id.ParticipantID) ([]*models.Answer, error)
}

type ProfileStore interface {
	Upsert(ctx context.Context, profile *radarModels.Profile) error
	FindByParticipant(ctx context.Context, participantID id.ParticipantID) (*radarModels.Profile, error)
}

type ProfileCache interface {
	Get(ctx context.Context, participantID id.ParticipantID) (*radarModels.Profile, bool, error)
	Set(ctx context.Context, profile *radarModels.Profile) error
	Delete(ctx context.Context, participantID id.ParticipantID) error
}

type ConsentLedger interface {
	Record(ctx context.Context, subjectID id.ParticipantID, t id.ConsentType, granted bool, meta consentModels.Metadata) (*consentModels.Record, error)
	Require(ctx context.Context, subjectID id.ParticipantID, t id.ConsentType) error
}

type FlagDeriver interface {
	Derive(ctx context.Context, participantID id.ParticipantID, questionNumber int, plaintext string) []*flagModels.Flag
	Replace(ctx context.Context, participantID id.ParticipantID, questionNumber int, flags []*flagModels.Flag) error
}

type Scorer interface {
	Questions() []aggregator.Question
	Question(number int) (aggregator.Question, bool)
	ScoreAnswer(questionNumber int, text string) (float64, error)
	ComputeFromScores(scores []radarModels.QuestionScore) (*radarModels.Profile, error)
}

type Encrypter interface {
	Encrypt(plaintext string) (string, error)
}

// AuditPublisher is the fail-closed compliance sink.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

var tracer = otel.Tracer("radar/assessment")

// Dependencies are the collaborators every Service needs.
type Dependencies struct {
	Participants ParticipantStore
	Answers      AnswerStore
	Profiles     ProfileStore
	Consents     ConsentLedger
	Flags        FlagDeriver
	Scorer       Scorer
	Cipher       Encrypter
	Tx           tx.Runner
}

type Service struct {
	participants ParticipantStore
	answers      AnswerStore
	profiles     ProfileStore
	consents     ConsentLedger
	flags        FlagDeriver
	scorer       Scorer
	cipher       Encrypter
	tx           tx.Runner
	cache        ProfileCache
	auditor      AuditPublisher
	metrics      *metrics.Metrics
	logger       *zap.Logger
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

func New(deps Dependencies, opts ...Option) (*Service, error) {
	switch {
	case deps.Participants == nil:
		return nil, fmt.Errorf("participant store is required")
	case deps.Answers == nil:
		return nil, fmt.Errorf("answer store is required")
	case deps.Profiles == nil:
		return nil, fmt.Errorf("profile store is required")
	case deps.Consents == nil:
		return nil, fmt.Errorf("consent ledger is required")
	case deps.Flags == nil:
		return nil, fmt.Errorf("flag deriver is required")
	case deps.Scorer == nil:
		return nil, fmt.Errorf("scorer is required")
	case deps.Cipher == nil:
		return nil, fmt.Errorf("answer cipher is required")
	case deps.Tx == nil:
		return nil, fmt.Errorf("transaction runner is required")
	}
	s := &Service{
		participants: deps.Participants,
		answers:      deps.Answers,
		profiles:     deps.Profiles,
		consents:     deps.Consents,
		flags:        deps.Flags,
		scorer:       deps.Scorer,
		cipher:       deps.Cipher,
		tx:           deps.Tx,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Create registers a participant by email. An existing live participant with
// the same normalized email is returned with created=false.
func (s *Service) Create(ctx context.Context, email, authUserID string) (*models.Participant, bool, error) {
	ctx, span := tracer.Start(ctx, "assessment.Create")
	defer span.End()

	email = models.NormalizeEmail(email)
	if email == "" {
		return nil, false, dErrors.New(dErrors.CodeInvalidInput, "email is required")
	}
	if existing, err := s.findLiveByEmail(ctx, email); err != nil || existing != nil {
		return existing, false, err
	}

	p := models.NewParticipant(email, authUserID, requestcontext.Now(ctx))
	if err := s.participants.Create(ctx, p); err != nil {
		if !errors.Is(err, sentinel.ErrConflict) {
			return nil, false, dErrors.Wrap(err, dErrors.CodeStorage, "failed to create participant")
		}
		// Lost a race with a concurrent create for the same email.
		existing, err := s.findLiveByEmail(ctx, email)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, dErrors.New(dErrors.CodeConflict, "participant could not be created")
		}
		return existing, false, nil
	}

	span.SetAttributes(attribute.String("participant.id", p.ID.String()))
	if s.metrics != nil {
		s.metrics.IncParticipantsCreated()
	}
	s.auditBestEffort(ctx, p.ID, audit.EventParticipantCreated, "")
	s.logger.Info("participant created", zap.String("participant_id", p.ID.String()))
	return p, true, nil
}

func (s *Service) findLiveByEmail(ctx context.Context, email string) (*models.Participant, error) {
	p, err := s.participants.FindLiveByEmail(ctx, email)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to look up participant")
	}
	return p, nil
}

// StartAssessment records the assessment consent grant and moves the
// participant from pending to in_progress in one transaction.
func (s *Service) StartAssessment(ctx context.Context, participantID id.ParticipantID, meta consentModels.Metadata) (*models.Participant, error) {
	ctx, span := tracer.Start(ctx, "assessment.StartAssessment")
	defer span.End()

	var started *models.Participant
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.loadForTransition(ctx, participantID)
		if err != nil {
			return err
		}
		if err := p.Start(requestcontext.Now(ctx)); err != nil {
			return err
		}
		if _, err := s.consents.Record(ctx, participantID, id.ConsentTypeAssessment, true, meta); err != nil {
			return err
		}
		if err := s.participants.Update(ctx, p); err != nil {
			return dErrors.Wrap(err, dErrors.CodeStorage, "failed to start assessment")
		}
		started = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.auditBestEffort(ctx, participantID, audit.EventAssessmentStarted, "")
	return started, nil
}

// SubmitAnswer stores one answer. Flags and the radar score are derived from
// plaintext before the answer is encrypted; the answer and the question's
// unreviewed flags are replaced together.
func (s *Service) SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest) (*models.Answer, error) {
	ctx, span := tracer.Start(ctx, "assessment.SubmitAnswer")
	defer span.End()
	span.SetAttributes(attribute.Int("question.number", req.QuestionNumber))

	question, ok := s.scorer.Question(req.QuestionNumber)
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("question %d not found", req.QuestionNumber))
	}
	sensitive := req.Sensitive || question.Sensitive

	var (
		answer *models.Answer
		raised []*flagModels.Flag
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.loadForTransition(ctx, req.ParticipantID)
		if err != nil {
			return err
		}
		if err := p.CanAnswer(); err != nil {
			return err
		}

		raised = s.flags.Derive(ctx, p.ID, question.Number, req.Text)
		score, err := s.scorer.ScoreAnswer(question.Number, req.Text)
		if err != nil {
			return err
		}

		raw := req.Text
		if sensitive {
			if raw, err = s.cipher.Encrypt(req.Text); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to protect answer")
			}
		}
		answer = &models.Answer{
			ParticipantID:  p.ID,
			QuestionNumber: question.Number,
			QuestionText:   question.Text,
			RawAnswer:      raw,
			Encrypted:      sensitive,
			Score:          score,
			AnsweredAt:     requestcontext.Now(ctx),
		}
		if err := s.answers.Upsert(ctx, answer); err != nil {
			return dErrors.Wrap(err, dErrors.CodeStorage, "failed to save answer")
		}
		return s.flags.Replace(ctx, p.ID, question.Number, raised)
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncAnswersSubmitted(answer.Encrypted)
		for _, f := range raised {
			s.metrics.IncFlagsRaised(string(f.Severity))
		}
	}
	s.logger.Info("answer submitted",
		zap.String("participant_id", answer.ParticipantID.String()),
		zap.Int("question_number", answer.QuestionNumber),
		zap.Bool("encrypted", answer.Encrypted),
		zap.Int("flags_raised", len(raised)),
	)
	return answer, nil
}

// Complete aggregates stored scores into the radar profile and marks the
// participant completed. Completing again recomputes the profile.
func (s *Service) Complete(ctx context.Context, participantID id.ParticipantID) (*radarModels.Profile, error) {
	ctx, span := tracer.Start(ctx, "assessment.Complete")
	defer span.End()

	var (
		profile   *radarModels.Profile
		firstTime bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.loadForTransition(ctx, participantID)
		if err != nil {
			return err
		}
		now := requestcontext.Now(ctx)
		firstTime = p.Status == models.StatusInProgress
		if err := p.Complete(now); err != nil {
			return err
		}

		answers, err := s.answers.ListByParticipant(ctx, participantID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeStorage, "failed to load answers")
		}
		scores := make([]radarModels.QuestionScore, 0, len(answers))
		for _, a := range answers {
			scores = append(scores, radarModels.QuestionScore{QuestionNumber: a.QuestionNumber, Score: a.Score})
		}
		profile, err = s.scorer.ComputeFromScores(scores)
		if err != nil {
			return err
		}
		profile.ParticipantID = participantID
		profile.ComputedAt = now

		if err := s.profiles.Upsert(ctx, profile); err != nil {
			return dErrors.Wrap(err, dErrors.CodeStorage, "failed to save radar profile")
		}
		if err := s.participants.Update(ctx, p); err != nil {
			return dErrors.Wrap(err, dErrors.CodeStorage, "failed to complete assessment")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, profile); err != nil {
			s.logger.Warn("failed to cache radar profile", zap.Error(err))
		}
	}
	if firstTime {
		if s.metrics != nil {
			s.metrics.IncCompletions()
		}
		s.auditBestEffort(ctx, participantID, audit.EventAssessmentComplete, "")
	}
	return profile, nil
}

// RecordConsent appends a consent record for a live participant. The
// participant row stays locked until the record is written, so an erasure
// cannot slip between the check and the append.
func (s *Service) RecordConsent(ctx context.Context, participantID id.ParticipantID, t id.ConsentType, granted bool, meta consentModels.Metadata) (*consentModels.Record, error) {
	ctx, span := tracer.Start(ctx, "assessment.RecordConsent")
	defer span.End()

	var record *consentModels.Record
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.loadLiveForUpdate(ctx, participantID); err != nil {
			return err
		}
		var err error
		record, err = s.consents.Record(ctx, participantID, t, granted, meta)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// RequestDeletion marks the participant deleted and revokes data_processing
// consent. From then on the participant is invisible to non-admin reads and
// waits for erasure.
func (s *Service) RequestDeletion(ctx context.Context, participantID id.ParticipantID, meta consentModels.Metadata) (*models.Participant, error) {
	ctx, span := tracer.Start(ctx, "assessment.RequestDeletion")
	defer span.End()

	var deleted *models.Participant
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.loadLiveForUpdate(ctx, participantID)
		if err != nil {
			return err
		}
		if err := p.MarkDeleted(requestcontext.Now(ctx)); err != nil {
			return err
		}
		if err := s.participants.Update(ctx, p); err != nil {
			return dErrors.Wrap(err, dErrors.CodeStorage, "failed to request deletion")
		}
		if _, err := s.consents.Record(ctx, participantID, id.ConsentTypeDataProcessing, false, meta); err != nil {
			return err
		}
		if s.auditor != nil {
			if err := s.auditor.Emit(ctx, audit.Event{
				ParticipantID: participantID,
				Action:        string(audit.EventDeletionRequested),
				Purpose:       "data_rights",
				Decision:      "accepted",
				RequestID:     requestcontext.RequestID(ctx),
				ActorID:       requestcontext.Subject(ctx),
			}); err != nil {
				return dErrors.Wrap(err, dErrors.CodeStorage, "failed to record deletion request")
			}
		}
		deleted = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, participantID); err != nil {
			s.logger.Warn("failed to evict radar profile", zap.Error(err))
		}
	}
	s.logger.Info("participant deletion requested", zap.String("participant_id", participantID.String()))
	return deleted, nil
}

// Get returns a live participant. Deleted participants are NotFound.
func (s *Service) Get(ctx context.Context, participantID id.ParticipantID) (*models.Participant, error) {
	return s.loadLive(ctx, participantID)
}

// GetAdmin returns the participant whatever its status. The read is audited.
func (s *Service) GetAdmin(ctx context.Context, participantID id.ParticipantID) (*models.Participant, error) {
	p, err := s.participants.FindByID(ctx, participantID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	s.auditBestEffort(ctx, participantID, audit.EventAdminParticipantRead, string(p.Status))
	return p, nil
}

// EnsureActive fails with NotFound unless the participant exists and is not deleted.
func (s *Service) EnsureActive(ctx context.Context, participantID id.ParticipantID) error {
	_, err := s.loadLive(ctx, participantID)
	return err
}

// Radar returns the stored profile, through the cache when one is configured.
func (s *Service) Radar(ctx context.Context, participantID id.ParticipantID) (*radarModels.Profile, error) {
	if _, err := s.loadLive(ctx, participantID); err != nil {
		return nil, err
	}
	if s.cache != nil {
		profile, hit, err := s.cache.Get(ctx, participantID)
		if err != nil {
			s.logger.Warn("radar cache lookup failed", zap.Error(err))
		}
		if s.metrics != nil {
			s.metrics.ObserveCacheLookup(hit)
		}
		if hit {
			return profile, nil
		}
	}

	profile, err := s.profiles.FindByParticipant(ctx, participantID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "radar profile not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to load radar profile")
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, profile); err != nil {
			s.logger.Warn("failed to cache radar profile", zap.Error(err))
		}
	}
	return profile, nil
}

// PublicRadar is Radar gated on an active public_radar consent.
func (s *Service) PublicRadar(ctx context.Context, participantID id.ParticipantID) (*radarModels.Profile, error) {
	if _, err := s.loadLive(ctx, participantID); err != nil {
		return nil, err
	}
	if err := s.consents.Require(ctx, participantID, id.ConsentTypePublicRadar); err != nil {
		return nil, err
	}
	return s.Radar(ctx, participantID)
}

// Questionnaire lists the questions in order.
func (s *Service) Questionnaire() []aggregator.Question {
	return s.scorer.Questions()
}

func (s *Service) Question(number int) (aggregator.Question, bool) {
	return s.scorer.Question(number)
}

func (s *Service) loadLive(ctx context.Context, participantID id.ParticipantID) (*models.Participant, error) {
	p, err := s.participants.FindByID(ctx, participantID)
	return live(p, err)
}

func (s *Service) loadLiveForUpdate(ctx context.Context, participantID id.ParticipantID) (*models.Participant, error) {
	p, err := s.participants.FindByIDForUpdate(ctx, participantID)
	return live(p, err)
}

// loadForTransition locks the participant whatever its status, leaving the
// state machine to reject deleted participants with InvalidState.
func (s *Service) loadForTransition(ctx context.Context, participantID id.ParticipantID) (*models.Participant, error) {
	p, err := s.participants.FindByIDForUpdate(ctx, participantID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return p, nil
}

func live(p *models.Participant, err error) (*models.Participant, error) {
	if err != nil {
		return nil, translateNotFound(err)
	}
	if p.IsDeleted() {
		return nil, dErrors.New(dErrors.CodeNotFound, "participant not found")
	}
	return p, nil
}

func translateNotFound(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "participant not found")
	}
	return dErrors.Wrap(err, dErrors.CodeStorage, "failed to load participant")
}

func (s *Service) auditBestEffort(ctx context.Context, participantID id.ParticipantID, event audit.AuditEvent, reason string) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, audit.Event{
		ParticipantID: participantID,
		Action:        string(event),
		Reason:        reason,
		RequestID:     requestcontext.RequestID(ctx),
		ActorID:       requestcontext.Subject(ctx),
	}); err != nil {
		s.logger.Warn("failed to audit event", zap.String("event", string(event)), zap.Error(err))
	}
}
