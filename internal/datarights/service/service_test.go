package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"radar/internal/answercrypt"
	assessmentModels "radar/internal/assessment/models"
	assessmentService "radar/internal/assessment/service"
	assessmentStore "radar/internal/assessment/store"
	consentModels "radar/internal/consent/models"
	consentService "radar/internal/consent/service"
	consentStore "radar/internal/consent/store"
	"radar/internal/datarights/models"
	"radar/internal/datarights/service/mocks"
	"radar/internal/flags/engine"
	flagService "radar/internal/flags/service"
	flagStore "radar/internal/flags/store"
	"radar/internal/radar/aggregator"
	radarCache "radar/internal/radar/cache"
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

const sensitiveAnswer = "I kissed them without asking, then I stopped and asked"

// DataRightsServiceSuite drives participants through the real lifecycle and
// then exercises export and erasure over the same in-memory stores.
type DataRightsServiceSuite struct {
	suite.Suite
	ctx          context.Context
	now          time.Time
	participants *assessmentStore.InMemoryParticipantStore
	answers      *assessmentStore.InMemoryAnswerStore
	profiles     *radarStore.InMemoryStore
	flagStore    *flagStore.InMemoryStore
	auditStore   *auditmemory.InMemoryStore
	consents     *consentService.Service
	cache        *radarCache.MemoryCache
	lifecycle    *assessmentService.Service
	service      *Service
}

func TestDataRightsServiceSuite(t *testing.T) {
	suite.Run(t, new(DataRightsServiceSuite))
}

func (s *DataRightsServiceSuite) SetupTest() {
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
	flags := flagService.New(rules, s.flagStore)
	mapping, err := aggregator.DefaultMapping()
	s.Require().NoError(err)
	key, err := answercrypt.GenerateKey()
	s.Require().NoError(err)
	cipher, err := answercrypt.New(answercrypt.NewStaticKeyProvider(key))
	s.Require().NoError(err)
	runner := tx.NewMemoryRunner()

	s.lifecycle, err = assessmentService.New(assessmentService.Dependencies{
		Participants: s.participants,
		Answers:      s.answers,
		Profiles:     s.profiles,
		Consents:     s.consents,
		Flags:        flags,
		Scorer:       aggregator.New(mapping),
		Cipher:       cipher,
		Tx:           runner,
	}, assessmentService.WithAuditPublisher(publisher), assessmentService.WithCache(s.cache))
	s.Require().NoError(err)

	s.service, err = New(Dependencies{
		Participants: s.participants,
		Answers:      s.answers,
		Profiles:     s.profiles,
		Flags:        flags,
		Consents:     s.consents,
		Cipher:       cipher,
		Tx:           runner,
	}, WithAuditPublisher(publisher), WithCache(s.cache))
	s.Require().NoError(err)
}

func (s *DataRightsServiceSuite) meta() consentModels.Metadata {
	return consentModels.Metadata{Text: "I agree to the assessment", IPAddress: "203.0.113.9", UserAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"}
}

// answered creates a participant with all required answers submitted.
func (s *DataRightsServiceSuite) answered(ctx context.Context, email string) id.ParticipantID {
	p, _, err := s.lifecycle.Create(ctx, email, "")
	s.Require().NoError(err)
	_, err = s.lifecycle.StartAssessment(ctx, p.ID, s.meta())
	s.Require().NoError(err)
	for q, text := range map[int]string{
		1: "Participation means showing up and giving what I can",
		2: "I built the shade structure and cooked for our team",
		3: sensitiveAnswer,
		4: "I introduce myself and invite newcomers to dinner",
	} {
		_, err := s.lifecycle.SubmitAnswer(ctx, assessmentModels.SubmitAnswerRequest{ParticipantID: p.ID, QuestionNumber: q, Text: text})
		s.Require().NoError(err)
	}
	return p.ID
}

func (s *DataRightsServiceSuite) completed(email string) id.ParticipantID {
	pid := s.answered(s.ctx, email)
	_, err := s.lifecycle.Complete(s.ctx, pid)
	s.Require().NoError(err)
	return pid
}

func (s *DataRightsServiceSuite) auditActions(pid id.ParticipantID) []string {
	events, err := s.auditStore.ListByParticipant(s.ctx, pid)
	s.Require().NoError(err)
	actions := make([]string, 0, len(events))
	for _, e := range events {
		actions = append(actions, e.Action)
	}
	return actions
}

func (s *DataRightsServiceSuite) TestExportAll() {
	pid := s.completed("ada@example.org")

	bundle, err := s.service.ExportAll(s.ctx, pid)
	s.Require().NoError(err)

	s.Equal(pid.String(), bundle.Participant.ID)
	s.Equal("completed", bundle.Participant.Status)
	s.Require().NotNil(bundle.Radar)
	s.Len(bundle.Radar.Dimensions, 7)
	s.Require().Len(bundle.Answers, 4)
	for _, a := range bundle.Answers {
		if a.QuestionNumber == 3 {
			s.True(a.Encrypted)
			s.Equal(sensitiveAnswer, a.Answer, "exports carry plaintext")
		}
	}
	s.Require().Len(bundle.Flags, 1)
	s.Equal("consent_concern", bundle.Flags[0].Type)
	s.Require().Len(bundle.Consents, 1)
	s.Equal("203.0.113.9", bundle.Consents[0].IPAddress)
	s.Equal(s.meta().UserAgent, bundle.Consents[0].UserAgent)
	s.Contains(bundle.Consents[0].Device, "Firefox")
	s.Equal(s.now, bundle.ExportedAt)
	s.Contains(s.auditActions(pid), "data_exported")
}

func (s *DataRightsServiceSuite) TestExportWithoutRadarHasNullProfile() {
	pid := s.answered(s.ctx, "ada@example.org")

	bundle, err := s.service.ExportAll(s.ctx, pid)
	s.Require().NoError(err)
	s.Nil(bundle.Radar)
	s.Len(bundle.Answers, 4)
}

func (s *DataRightsServiceSuite) TestExportHidesDeletedAndUnknown() {
	pid := s.completed("ada@example.org")
	_, err := s.lifecycle.RequestDeletion(s.ctx, pid, s.meta())
	s.Require().NoError(err)

	_, err = s.service.ExportAll(s.ctx, pid)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.service.ExportAll(s.ctx, id.NewParticipantID())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *DataRightsServiceSuite) TestEraseAllRemovesEveryOwnedRecord() {
	pid := s.completed("ada@example.org")
	_, hit, _ := s.cache.Get(s.ctx, pid)
	s.Require().True(hit)

	report, err := s.service.EraseAll(s.ctx, pid)
	s.Require().NoError(err)
	s.True(report.Complete)
	steps := make([]string, 0, len(report.Steps))
	for _, st := range report.Steps {
		s.True(st.OK, st.Step)
		steps = append(steps, st.Step)
	}
	s.Equal([]string{"flags", "answers", "radar", "radar_cache", "consents", "participant"}, steps)

	_, err = s.participants.FindByID(s.ctx, pid)
	s.ErrorIs(err, sentinel.ErrNotFound)
	answers, err := s.answers.ListByParticipant(s.ctx, pid)
	s.Require().NoError(err)
	s.Empty(answers)
	flags, err := s.flagStore.ListByParticipant(s.ctx, pid)
	s.Require().NoError(err)
	s.Empty(flags)
	_, err = s.profiles.FindByParticipant(s.ctx, pid)
	s.ErrorIs(err, sentinel.ErrNotFound)
	history, err := s.consents.History(s.ctx, pid)
	s.Require().NoError(err)
	s.Empty(history)
	_, hit, _ = s.cache.Get(s.ctx, pid)
	s.False(hit)

	_, err = s.service.ExportAll(s.ctx, pid)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Contains(s.auditActions(pid), "participant_erased", "the compliance trail outlives the participant")
}

func (s *DataRightsServiceSuite) TestEraseAllFreesEmail() {
	pid := s.completed("ada@example.org")
	_, err := s.service.EraseAll(s.ctx, pid)
	s.Require().NoError(err)

	p, created, err := s.lifecycle.Create(s.ctx, "ada@example.org", "")
	s.Require().NoError(err)
	s.True(created)
	s.NotEqual(pid, p.ID)
}

func (s *DataRightsServiceSuite) TestEraseUnknownParticipant() {
	_, err := s.service.EraseAll(s.ctx, id.NewParticipantID())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *DataRightsServiceSuite) TestPurgeExpired() {
	longAgo := requestcontext.WithTime(s.ctx, s.now.Add(-31*24*time.Hour))
	recently := requestcontext.WithTime(s.ctx, s.now.Add(-24*time.Hour))

	expired := s.answered(longAgo, "old@example.org")
	_, err := s.lifecycle.RequestDeletion(longAgo, expired, s.meta())
	s.Require().NoError(err)
	pending := s.answered(recently, "new@example.org")
	_, err = s.lifecycle.RequestDeletion(recently, pending, s.meta())
	s.Require().NoError(err)
	live := s.answered(longAgo, "live@example.org")

	report, err := s.service.PurgeExpired(s.ctx, 30*24*time.Hour)
	s.Require().NoError(err)
	s.Equal(1, report.Candidates)
	s.Equal(1, report.Erased)
	s.Equal(s.now.Add(-30*24*time.Hour), report.Cutoff)

	_, err = s.participants.FindByID(s.ctx, expired)
	s.ErrorIs(err, sentinel.ErrNotFound)
	for _, pid := range []id.ParticipantID{pending, live} {
		_, err = s.participants.FindByID(s.ctx, pid)
		s.NoError(err)
	}
}

func (s *DataRightsServiceSuite) TestPurgeClampsWindow() {
	report, err := s.service.PurgeExpired(s.ctx, 365*24*time.Hour)
	s.Require().NoError(err)
	s.Equal(s.now.Add(-MaxErasureWindow), report.Cutoff)

	report, err = s.service.PurgeExpired(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal(s.now.Add(-MaxErasureWindow), report.Cutoff)
}

// DataRightsMockSuite covers failure paths the in-memory stores cannot produce.
type DataRightsMockSuite struct {
	suite.Suite
	ctx          context.Context
	participants *mocks.MockParticipantStore
	answers      *mocks.MockAnswerStore
	profiles     *mocks.MockProfileStore
	cache        *mocks.MockProfileCache
	flags        *mocks.MockFlagLedger
	consents     *mocks.MockConsentLedger
	cipher       *mocks.MockDecrypter
	auditor      *mocks.MockAuditPublisher
	service      *Service
}

func TestDataRightsMockSuite(t *testing.T) {
	suite.Run(t, new(DataRightsMockSuite))
}

func (s *DataRightsMockSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	s.participants = mocks.NewMockParticipantStore(ctrl)
	s.answers = mocks.NewMockAnswerStore(ctrl)
	s.profiles = mocks.NewMockProfileStore(ctrl)
	s.cache = mocks.NewMockProfileCache(ctrl)
	s.flags = mocks.NewMockFlagLedger(ctrl)
	s.consents = mocks.NewMockConsentLedger(ctrl)
	s.cipher = mocks.NewMockDecrypter(ctrl)
	s.auditor = mocks.NewMockAuditPublisher(ctrl)

	var err error
	s.service, err = New(Dependencies{
		Participants: s.participants,
		Answers:      s.answers,
		Profiles:     s.profiles,
		Flags:        s.flags,
		Consents:     s.consents,
		Cipher:       s.cipher,
		Tx:           tx.NewMemoryRunner(),
	}, WithAuditPublisher(s.auditor), WithCache(s.cache))
	s.Require().NoError(err)
}

func (s *DataRightsMockSuite) participant(status assessmentModels.Status) *assessmentModels.Participant {
	p := assessmentModels.NewParticipant("ada@example.org", "", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	p.Status = status
	return p
}

func (s *DataRightsMockSuite) TestNewRequiresDependencies() {
	_, err := New(Dependencies{})
	s.Error(err)
}

func (s *DataRightsMockSuite) TestFailedStepKeepsTombstone() {
	p := s.participant(assessmentModels.StatusCompleted)
	s.participants.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
	s.participants.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *assessmentModels.Participant) error {
			s.Equal(assessmentModels.StatusDeleted, updated.Status)
			return nil
		})
	s.flags.EXPECT().DeleteByParticipant(gomock.Any(), p.ID).Return(errors.New("connection reset"))
	s.answers.EXPECT().DeleteByParticipant(gomock.Any(), p.ID).Return(nil)
	s.profiles.EXPECT().DeleteByParticipant(gomock.Any(), p.ID).Return(nil)
	s.cache.EXPECT().Delete(gomock.Any(), p.ID).Return(nil)
	s.consents.EXPECT().DeleteBySubject(gomock.Any(), p.ID).Return(nil)
	s.participants.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
	s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event audit.Event) error {
			s.Equal(string(audit.EventErasureIncomplete), event.Action)
			s.Equal("flags", event.Reason)
			return nil
		})

	report, err := s.service.EraseAll(s.ctx, p.ID)
	s.Require().NoError(err)
	s.False(report.Complete)
	s.Equal([]string{models.StepFlags}, report.FailedSteps())
	last := report.Steps[len(report.Steps)-1]
	s.Equal(models.StepParticipant, last.Step)
	s.True(last.Skipped)
	s.NotContains(report.Steps[0].Error, "connection reset")
}

func (s *DataRightsMockSuite) TestRetryOnTombstoneDoesNotRemark() {
	p := s.participant(assessmentModels.StatusPending)
	s.Require().NoError(p.MarkDeleted(time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)))
	s.participants.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
	s.participants.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	s.flags.EXPECT().DeleteByParticipant(gomock.Any(), p.ID).Return(nil)
	s.answers.EXPECT().DeleteByParticipant(gomock.Any(), p.ID).Return(nil)
	s.profiles.EXPECT().DeleteByParticipant(gomock.Any(), p.ID).Return(nil)
	s.cache.EXPECT().Delete(gomock.Any(), p.ID).Return(nil)
	s.consents.EXPECT().DeleteBySubject(gomock.Any(), p.ID).Return(nil)
	s.participants.EXPECT().Delete(gomock.Any(), p.ID).Return(nil)
	s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("outbox down"))

	report, err := s.service.EraseAll(s.ctx, p.ID)
	s.Require().NoError(err, "audit failures after erasure are logged")
	s.True(report.Complete)
}

func (s *DataRightsMockSuite) TestMarkDeletedFailureAbortsBeforeErasing() {
	p := s.participant(assessmentModels.StatusInProgress)
	s.participants.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
	s.participants.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("read-only replica"))

	_, err := s.service.EraseAll(s.ctx, p.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeStorage))
}

func (s *DataRightsMockSuite) expectExportReads(p *assessmentModels.Participant, answers []*assessmentModels.Answer) {
	s.participants.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
	s.profiles.EXPECT().FindByParticipant(gomock.Any(), p.ID).Return(nil, sentinel.ErrNotFound)
	s.answers.EXPECT().ListByParticipant(gomock.Any(), p.ID).Return(answers, nil)
}

func (s *DataRightsMockSuite) TestExportAbortsOnDecryptionFailure() {
	p := s.participant(assessmentModels.StatusInProgress)
	s.expectExportReads(p, []*assessmentModels.Answer{
		{ParticipantID: p.ID, QuestionNumber: 3, RawAnswer: "v1.tampered", Encrypted: true},
	})
	s.cipher.EXPECT().Decrypt("v1.tampered").Return("", dErrors.New(dErrors.CodeDecryptionFailed, "answer could not be decrypted"))

	_, err := s.service.ExportAll(s.ctx, p.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeDecryptionFailed))
}

func (s *DataRightsMockSuite) TestExportFailsClosedOnAudit() {
	p := s.participant(assessmentModels.StatusInProgress)
	s.expectExportReads(p, nil)
	s.flags.EXPECT().ListForParticipant(gomock.Any(), p.ID).Return(nil, nil)
	s.consents.EXPECT().History(gomock.Any(), p.ID).Return(nil, nil)
	s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("outbox down"))

	_, err := s.service.ExportAll(s.ctx, p.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeStorage))
}

func (s *DataRightsMockSuite) TestPurgeListFailure() {
	s.participants.EXPECT().ListDeletedBefore(gomock.Any(), gomock.Any(), defaultPurgeBatch).Return(nil, errors.New("timeout"))

	_, err := s.service.PurgeExpired(s.ctx, time.Hour)
	s.True(dErrors.HasCode(err, dErrors.CodeStorage))
}

func (s *DataRightsMockSuite) TestPurgeCountsPerParticipantFailures() {
	gone := id.NewParticipantID()
	s.participants.EXPECT().ListDeletedBefore(gomock.Any(), gomock.Any(), defaultPurgeBatch).Return([]id.ParticipantID{gone}, nil)
	s.participants.EXPECT().FindByID(gomock.Any(), gone).Return(nil, sentinel.ErrNotFound)

	report, err := s.service.PurgeExpired(s.ctx, time.Hour)
	s.Require().NoError(err)
	s.Equal(1, report.Candidates)
	s.Equal(1, report.Failed)
	s.Equal(0, report.Erased)
}
