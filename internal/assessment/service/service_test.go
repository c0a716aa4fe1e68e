package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"radar/internal/answercrypt"
	"radar/internal/assessment/models"
	"radar/internal/assessment/service/mocks"
	assessmentStore "radar/internal/assessment/store"
	consentModels "radar/internal/consent/models"
	consentService "radar/internal/consent/service"
	consentStore "radar/internal/consent/store"
	"radar/internal/flags/engine"
	flagService "radar/internal/flags/service"
	flagStore "radar/internal/flags/store"
	"radar/internal/radar/aggregator"
	radarCache "radar/internal/radar/cache"
	radarModels "radar/internal/radar/models"
	radarStore "radar/internal/radar/store"
	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
	audit "radar/pkg/platform/audit"
	"radar/pkg/platform/audit/publishers/compliance"
	auditmemory "radar/pkg/platform/audit/store/memory"
	"radar/pkg/platform/sentinel"
	"radar/pkg/platform/tx"
	"radar/pkg/requestcontext"
)

// AssessmentServiceSuite wires the real in-memory collaborators so the
// lifecycle is exercised end to end.
type AssessmentServiceSuite struct {
	suite.Suite
	ctx          context.Context
	now          time.Time
	participants *assessmentStore.InMemoryParticipantStore
	answers      *assessmentStore.InMemoryAnswerStore
	profiles     *radarStore.InMemoryStore
	flagStore    *flagStore.InMemoryStore
	auditStore   *auditmemory.InMemoryStore
	consents     *consentService.Service
	cipher       *answercrypt.Cipher
	cache        *radarCache.MemoryCache
	service      *Service
}

func TestAssessmentServiceSuite(t *testing.T) {
	suite.Run(t, new(AssessmentServiceSuite))
}

func (s *AssessmentServiceSuite) SetupTest() {
	s.now = time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)

	s.participants = assessmentStore.NewInMemoryParticipantStore()
	s.answers = assessmentStore.NewInMemoryAnswerStore()
	s.profiles = radarStore.NewInMemoryStore()
	s.flagStore = flagStore.NewInMemoryStore()
	s.auditStore = auditmemory.NewInMemoryStore()
	s.cache = radarCache.NewMemory(time.Minute)
	publisher := compliance.New(s.auditStore)

	s.consents = consentService.New(consentStore.NewInMemoryStore(), consentService.WithAuditPublisher(publisher))
	rules, err := engine.LoadRuleEngine("")
	s.Require().NoError(err)
	mapping, err := aggregator.DefaultMapping()
	s.Require().NoError(err)
	key, err := answercrypt.GenerateKey()
	s.Require().NoError(err)
	s.cipher, err = answercrypt.New(answercrypt.NewStaticKeyProvider(key))
	s.Require().NoError(err)

	s.service, err = New(Dependencies{
		Participants: s.participants,
		Answers:      s.answers,
		Profiles:     s.profiles,
		Consents:     s.consents,
		Flags:        flagService.New(rules, s.flagStore),
		Scorer:       aggregator.New(mapping),
		Cipher:       s.cipher,
		Tx:           tx.NewMemoryRunner(),
	}, WithAuditPublisher(publisher), WithCache(s.cache))
	s.Require().NoError(err)
}

func (s *AssessmentServiceSuite) meta() consentModels.Metadata {
	return consentModels.Metadata{Text: "I agree to the assessment", IPAddress: "203.0.113.9", UserAgent: "Firefox on Linux"}
}

func (s *AssessmentServiceSuite) startedParticipant() *models.Participant {
	p, created, err := s.service.Create(s.ctx, "ada@example.org", "")
	s.Require().NoError(err)
	s.Require().True(created)
	_, err = s.service.StartAssessment(s.ctx, p.ID, s.meta())
	s.Require().NoError(err)
	return p
}

func (s *AssessmentServiceSuite) submit(pid id.ParticipantID, q int, text string) *models.Answer {
	a, err := s.service.SubmitAnswer(s.ctx, models.SubmitAnswerRequest{ParticipantID: pid, QuestionNumber: q, Text: text})
	s.Require().NoError(err)
	return a
}

func (s *AssessmentServiceSuite) submitRequired(pid id.ParticipantID) {
	s.submit(pid, 1, "Participation means showing up and giving what I can")
	s.submit(pid, 2, "I built the shade structure and cooked for our team")
	s.submit(pid, 3, "I kissed them without asking, then I stopped and asked")
	s.submit(pid, 4, "I introduce myself and invite newcomers to dinner")
}

func (s *AssessmentServiceSuite) auditActions(pid id.ParticipantID) []string {
	events, err := s.auditStore.ListByParticipant(s.ctx, pid)
	s.Require().NoError(err)
	actions := make([]string, 0, len(events))
	for _, e := range events {
		actions = append(actions, e.Action)
	}
	return actions
}

func (s *AssessmentServiceSuite) TestFullLifecycle() {
	p := s.startedParticipant()

	stored, err := s.service.Get(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusInProgress, stored.Status)
	s.Equal(s.now, *stored.ConsentGrantedAt)
	s.Equal(s.now, *stored.AssessmentStartedAt)
	s.NoError(s.consents.Require(s.ctx, p.ID, id.ConsentTypeAssessment))

	s.submitRequired(p.ID)

	answers, err := s.answers.ListByParticipant(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().Len(answers, 4)
	for _, a := range answers {
		if a.QuestionNumber == 3 {
			s.True(a.Encrypted)
			s.NotContains(a.RawAnswer, "kissed")
			plain, err := s.cipher.Decrypt(a.RawAnswer)
			s.Require().NoError(err)
			s.Equal("I kissed them without asking, then I stopped and asked", plain)
			continue
		}
		s.False(a.Encrypted)
		s.Greater(a.Score, 0.0)
	}

	flags, err := s.flagStore.ListByParticipant(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().Len(flags, 1, "flags are derived from plaintext before encryption")
	s.Equal("consent_concern", flags[0].Type)
	s.Equal(3, flags[0].QuestionNumber)

	later := requestcontext.WithTime(s.ctx, s.now.Add(time.Hour))
	profile, err := s.service.Complete(later, p.ID)
	s.Require().NoError(err)
	s.Len(profile.Dimensions, len(radarModels.Dimensions()))
	for _, d := range radarModels.Dimensions() {
		v, ok := profile.Dimensions[d]
		s.True(ok, string(d))
		s.GreaterOrEqual(v, 0.0)
		s.LessOrEqual(v, 1.0)
	}

	completed, err := s.service.Get(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusCompleted, completed.Status)
	s.Equal(s.now.Add(time.Hour), *completed.CompletedAt)

	s.Equal([]string{"participant_created", "consent_granted", "assessment_started", "assessment_completed"}, s.auditActions(p.ID))
}

func (s *AssessmentServiceSuite) TestCreateIsIdempotentPerEmail() {
	first, created, err := s.service.Create(s.ctx, "Ada@Example.org ", "")
	s.Require().NoError(err)
	s.True(created)
	s.Equal("ada@example.org", first.Email)

	second, created, err := s.service.Create(s.ctx, "ada@example.org", "")
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first.ID, second.ID)
}

func (s *AssessmentServiceSuite) TestCreateAfterDeletionIssuesNewParticipant() {
	first, _, err := s.service.Create(s.ctx, "ada@example.org", "")
	s.Require().NoError(err)
	_, err = s.service.RequestDeletion(s.ctx, first.ID, s.meta())
	s.Require().NoError(err)

	second, created, err := s.service.Create(s.ctx, "ada@example.org", "")
	s.Require().NoError(err)
	s.True(created)
	s.NotEqual(first.ID, second.ID)
}

func (s *AssessmentServiceSuite) TestCreateRejectsEmptyEmail() {
	_, _, err := s.service.Create(s.ctx, "   ", "")
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *AssessmentServiceSuite) TestStartRequiresPending() {
	p := s.startedParticipant()

	_, err := s.service.StartAssessment(s.ctx, p.ID, s.meta())
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))

	history, err := s.consents.History(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Len(history, 1, "a rejected start must not record consent")
}

func (s *AssessmentServiceSuite) TestStartUnknownParticipant() {
	_, err := s.service.StartAssessment(s.ctx, id.NewParticipantID(), s.meta())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *AssessmentServiceSuite) TestSubmitRequiresInProgress() {
	p, _, err := s.service.Create(s.ctx, "ada@example.org", "")
	s.Require().NoError(err)

	_, err = s.service.SubmitAnswer(s.ctx, models.SubmitAnswerRequest{ParticipantID: p.ID, QuestionNumber: 1, Text: "hello there friend"})
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func (s *AssessmentServiceSuite) TestSubmitUnknownQuestion() {
	p := s.startedParticipant()
	_, err := s.service.SubmitAnswer(s.ctx, models.SubmitAnswerRequest{ParticipantID: p.ID, QuestionNumber: 99, Text: "hello"})
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *AssessmentServiceSuite) TestResubmissionReplacesAnswerAndUnreviewedFlags() {
	p := s.startedParticipant()

	s.submit(p.ID, 3, "I went ahead without asking")
	flags, _ := s.flagStore.ListByParticipant(s.ctx, p.ID)
	s.Require().Len(flags, 1)

	later := requestcontext.WithTime(s.ctx, s.now.Add(time.Minute))
	_, err := s.service.SubmitAnswer(later, models.SubmitAnswerRequest{ParticipantID: p.ID, QuestionNumber: 3, Text: "I asked first and listened to their answer"})
	s.Require().NoError(err)

	flags, _ = s.flagStore.ListByParticipant(s.ctx, p.ID)
	s.Empty(flags)
	answers, _ := s.answers.ListByParticipant(s.ctx, p.ID)
	s.Require().Len(answers, 1)
	plain, err := s.cipher.Decrypt(answers[0].RawAnswer)
	s.Require().NoError(err)
	s.Equal("I asked first and listened to their answer", plain)
	s.Equal(s.now.Add(time.Minute), answers[0].AnsweredAt)
}

func (s *AssessmentServiceSuite) TestCompleteRequiresAllRequiredAnswers() {
	p := s.startedParticipant()
	s.submit(p.ID, 1, "Participation means showing up")
	s.submit(p.ID, 2, "I built things")

	_, err := s.service.Complete(s.ctx, p.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeIncompleteAssessment))

	stored, _ := s.service.Get(s.ctx, p.ID)
	s.Equal(models.StatusInProgress, stored.Status)
	_, err = s.profiles.FindByParticipant(s.ctx, p.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *AssessmentServiceSuite) TestCompleteFromPendingIsInvalid() {
	p, _, err := s.service.Create(s.ctx, "ada@example.org", "")
	s.Require().NoError(err)
	_, err = s.service.Complete(s.ctx, p.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func (s *AssessmentServiceSuite) TestCompleteAgainRecomputesProfile() {
	p := s.startedParticipant()
	s.submitRequired(p.ID)
	first, err := s.service.Complete(s.ctx, p.ID)
	s.Require().NoError(err)

	later := requestcontext.WithTime(s.ctx, s.now.Add(2*time.Hour))
	second, err := s.service.Complete(later, p.ID)
	s.Require().NoError(err)
	s.Equal(first.Dimensions, second.Dimensions)
	s.Equal(s.now.Add(2*time.Hour), second.ComputedAt)

	stored, _ := s.service.Get(s.ctx, p.ID)
	s.Equal(s.now, *stored.CompletedAt, "completion time is kept")
}

func (s *AssessmentServiceSuite) TestRequestDeletionHidesParticipant() {
	p := s.startedParticipant()

	deleted, err := s.service.RequestDeletion(s.ctx, p.ID, s.meta())
	s.Require().NoError(err)
	s.Equal(models.StatusDeleted, deleted.Status)
	s.Equal(s.now, *deleted.ManuallyDeletedAt)

	_, err = s.service.Get(s.ctx, p.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.True(dErrors.HasCode(s.service.EnsureActive(s.ctx, p.ID), dErrors.CodeNotFound))

	admin, err := s.service.GetAdmin(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusDeleted, admin.Status)

	current, err := s.consents.Current(s.ctx, p.ID, id.ConsentTypeDataProcessing)
	s.Require().NoError(err)
	s.Nil(current)
	history, _ := s.consents.History(s.ctx, p.ID)
	s.Require().Len(history, 2)
	s.Equal(id.ConsentTypeDataProcessing, history[1].Type)
	s.False(history[1].Granted)

	_, err = s.service.RequestDeletion(s.ctx, p.ID, s.meta())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	s.Contains(s.auditActions(p.ID), "deletion_requested")
	s.Contains(s.auditActions(p.ID), "admin_participant_read")
}

func (s *AssessmentServiceSuite) TestLifecycleOnDeletedParticipantIsInvalidState() {
	p := s.startedParticipant()
	s.submit(p.ID, 1, "Participation means showing up")
	_, err := s.service.RequestDeletion(s.ctx, p.ID, s.meta())
	s.Require().NoError(err)

	s.Run("submit", func() {
		_, err := s.service.SubmitAnswer(s.ctx, models.SubmitAnswerRequest{ParticipantID: p.ID, QuestionNumber: 2, Text: "I built things"})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState), "got %v", err)
	})
	s.Run("start", func() {
		_, err := s.service.StartAssessment(s.ctx, p.ID, s.meta())
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState), "got %v", err)
	})
	s.Run("complete", func() {
		_, err := s.service.Complete(s.ctx, p.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState), "got %v", err)
	})

	admin, err := s.service.GetAdmin(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusDeleted, admin.Status)
	answers, _ := s.answers.ListByParticipant(s.ctx, p.ID)
	s.Len(answers, 1)
}

func (s *AssessmentServiceSuite) TestRadarUsesCache() {
	p := s.startedParticipant()
	s.submitRequired(p.ID)
	profile, err := s.service.Complete(s.ctx, p.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.profiles.DeleteByParticipant(s.ctx, p.ID))
	cached, err := s.service.Radar(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(profile.Dimensions, cached.Dimensions)

	s.Require().NoError(s.cache.Delete(s.ctx, p.ID))
	_, err = s.service.Radar(s.ctx, p.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *AssessmentServiceSuite) TestRadarBeforeCompletion() {
	p := s.startedParticipant()
	_, err := s.service.Radar(s.ctx, p.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *AssessmentServiceSuite) TestPublicRadarFollowsConsent() {
	p := s.startedParticipant()
	s.submitRequired(p.ID)
	_, err := s.service.Complete(s.ctx, p.ID)
	s.Require().NoError(err)

	_, err = s.service.PublicRadar(s.ctx, p.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeConsentRequired))

	_, err = s.consents.Record(s.ctx, p.ID, id.ConsentTypePublicRadar, true, s.meta())
	s.Require().NoError(err)
	profile, err := s.service.PublicRadar(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p.ID, profile.ParticipantID)

	_, err = s.consents.Record(s.ctx, p.ID, id.ConsentTypePublicRadar, false, s.meta())
	s.Require().NoError(err)
	_, err = s.service.PublicRadar(s.ctx, p.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeConsentRequired))
}

func (s *AssessmentServiceSuite) TestRadarHiddenAfterDeletion() {
	p := s.startedParticipant()
	s.submitRequired(p.ID)
	_, err := s.service.Complete(s.ctx, p.ID)
	s.Require().NoError(err)
	_, err = s.service.RequestDeletion(s.ctx, p.ID, s.meta())
	s.Require().NoError(err)

	_, err = s.service.Radar(s.ctx, p.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	_, ok, _ := s.cache.Get(s.ctx, p.ID)
	s.False(ok)
}

func (s *AssessmentServiceSuite) TestRecordConsentRequiresLiveParticipant() {
	p := s.startedParticipant()

	rec, err := s.service.RecordConsent(s.ctx, p.ID, id.ConsentTypeAnalytics, true, s.meta())
	s.Require().NoError(err)
	s.True(rec.Granted)
	s.Equal("Firefox on Linux", rec.UserAgent)

	_, err = s.service.RequestDeletion(s.ctx, p.ID, s.meta())
	s.Require().NoError(err)
	before, _ := s.consents.History(s.ctx, p.ID)

	_, err = s.service.RecordConsent(s.ctx, p.ID, id.ConsentTypePublicRadar, true, s.meta())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	after, _ := s.consents.History(s.ctx, p.ID)
	s.Len(after, len(before), "no consent is appended for a deleted participant")
}

func (s *AssessmentServiceSuite) TestQuestionnaire() {
	qs := s.service.Questionnaire()
	s.Require().NotEmpty(qs)
	s.Equal(1, qs[0].Number)
}

// AssessmentServiceMockSuite covers failure paths that the in-memory stores
// cannot produce.
type AssessmentServiceMockSuite struct {
	suite.Suite
	ctx          context.Context
	participants *mocks.MockParticipantStore
	consents     *mocks.MockConsentLedger
	auditor      *mocks.MockAuditPublisher
	cipher       *mocks.MockEncrypter
	flags        *mocks.MockFlagDeriver
	service      *Service
}

func TestAssessmentServiceMockSuite(t *testing.T) {
	suite.Run(t, new(AssessmentServiceMockSuite))
}

func (s *AssessmentServiceMockSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	s.participants = mocks.NewMockParticipantStore(ctrl)
	s.consents = mocks.NewMockConsentLedger(ctrl)
	s.auditor = mocks.NewMockAuditPublisher(ctrl)
	s.cipher = mocks.NewMockEncrypter(ctrl)
	s.flags = mocks.NewMockFlagDeriver(ctrl)
	mapping, err := aggregator.DefaultMapping()
	s.Require().NoError(err)

	s.service, err = New(Dependencies{
		Participants: s.participants,
		Answers:      mocks.NewMockAnswerStore(ctrl),
		Profiles:     mocks.NewMockProfileStore(ctrl),
		Consents:     s.consents,
		Flags:        s.flags,
		Scorer:       aggregator.New(mapping),
		Cipher:       s.cipher,
		Tx:           tx.NewMemoryRunner(),
	}, WithAuditPublisher(s.auditor))
	s.Require().NoError(err)
}

func (s *AssessmentServiceMockSuite) TestNewRequiresDependencies() {
	_, err := New(Dependencies{})
	s.Error(err)
}

func (s *AssessmentServiceMockSuite) TestCreateLosesRaceAndRereads() {
	existing := models.NewParticipant("ada@example.org", "", time.Now())
	gomock.InOrder(
		s.participants.EXPECT().FindLiveByEmail(gomock.Any(), "ada@example.org").Return(nil, sentinel.ErrNotFound),
		s.participants.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sentinel.ErrConflict),
		s.participants.EXPECT().FindLiveByEmail(gomock.Any(), "ada@example.org").Return(existing, nil),
	)

	p, created, err := s.service.Create(s.ctx, "ada@example.org", "")
	s.Require().NoError(err)
	s.False(created)
	s.Equal(existing.ID, p.ID)
}

func (s *AssessmentServiceMockSuite) TestCreateStorageFailure() {
	s.participants.EXPECT().FindLiveByEmail(gomock.Any(), "ada@example.org").Return(nil, errors.New("connection reset"))

	_, _, err := s.service.Create(s.ctx, "ada@example.org", "")
	s.True(dErrors.HasCode(err, dErrors.CodeStorage))
}

func (s *AssessmentServiceMockSuite) TestRequestDeletionFailsWhenAuditFails() {
	p := models.NewParticipant("ada@example.org", "", time.Now())
	s.participants.EXPECT().FindByIDForUpdate(gomock.Any(), p.ID).Return(p, nil)
	s.participants.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	s.consents.EXPECT().Record(gomock.Any(), p.ID, id.ConsentTypeDataProcessing, false, gomock.Any()).Return(&consentModels.Record{}, nil)
	s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
		s.Equal(string(audit.EventDeletionRequested), e.Action)
		return errors.New("outbox unavailable")
	})

	_, err := s.service.RequestDeletion(s.ctx, p.ID, consentModels.Metadata{})
	s.True(dErrors.HasCode(err, dErrors.CodeStorage))
}

func (s *AssessmentServiceMockSuite) TestRecordConsentLocksParticipantBeforeAppend() {
	p := models.NewParticipant("ada@example.org", "", time.Now())
	gomock.InOrder(
		s.participants.EXPECT().FindByIDForUpdate(gomock.Any(), p.ID).Return(p, nil),
		s.consents.EXPECT().Record(gomock.Any(), p.ID, id.ConsentTypeAnalytics, true, gomock.Any()).
			Return(&consentModels.Record{Type: id.ConsentTypeAnalytics, Granted: true}, nil),
	)

	rec, err := s.service.RecordConsent(s.ctx, p.ID, id.ConsentTypeAnalytics, true, consentModels.Metadata{})
	s.Require().NoError(err)
	s.True(rec.Granted)
}

func (s *AssessmentServiceMockSuite) TestRecordConsentSkipsErasedParticipant() {
	p := models.NewParticipant("ada@example.org", "", time.Now())
	s.Require().NoError(p.MarkDeleted(time.Now()))
	s.participants.EXPECT().FindByIDForUpdate(gomock.Any(), p.ID).Return(p, nil)

	_, err := s.service.RecordConsent(s.ctx, p.ID, id.ConsentTypeAnalytics, true, consentModels.Metadata{})
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *AssessmentServiceMockSuite) TestSubmitEncryptionFailure() {
	p := models.NewParticipant("ada@example.org", "", time.Now())
	s.Require().NoError(p.Start(time.Now()))
	s.participants.EXPECT().FindByIDForUpdate(gomock.Any(), p.ID).Return(p, nil)
	s.flags.EXPECT().Derive(gomock.Any(), p.ID, 3, "secret").Return(nil)
	s.cipher.EXPECT().Encrypt("secret").Return("", errors.New("entropy exhausted"))

	_, err := s.service.SubmitAnswer(s.ctx, models.SubmitAnswerRequest{ParticipantID: p.ID, QuestionNumber: 3, Text: "secret", Sensitive: true})
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}
