package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	assessmentModels "radar/internal/assessment/models"
	"radar/internal/datarights/handler/mocks"
	"radar/internal/datarights/models"
	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
	"radar/pkg/testutil"
)

type DataRightsHandlerSuite struct {
	suite.Suite
	rights *mocks.MockService
	router chi.Router
}

func TestDataRightsHandlerSuite(t *testing.T) {
	suite.Run(t, new(DataRightsHandlerSuite))
}

func (s *DataRightsHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.rights = mocks.NewMockService(ctrl)
	s.router = chi.NewRouter()
	New(s.rights, zap.NewNop()).Register(s.router)
}

func (s *DataRightsHandlerSuite) TestExport() {
	pid := id.NewParticipantID()
	s.rights.EXPECT().ExportAll(gomock.Any(), pid).Return(&models.Bundle{
		Participant: assessmentModels.ParticipantResponse{ID: pid.String(), Status: "completed"},
		Answers:     []models.ExportedAnswer{{QuestionNumber: 3, Answer: "I ask first", Encrypted: true}},
		ExportedAt:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/participants/"+pid.String()+"/export"))

	testutil.AssertStatusOK(s.T(), rr)
	s.Contains(rr.Header().Get("Content-Disposition"), pid.String())
	resp := testutil.UnmarshalResponse[models.Bundle](s.T(), rr)
	s.Nil(resp.Radar)
	s.Require().Len(resp.Answers, 1)
	s.Equal("I ask first", resp.Answers[0].Answer)
}

func (s *DataRightsHandlerSuite) TestExportErrors() {
	pid := id.NewParticipantID()

	s.Run("unknown participant", func() {
		s.rights.EXPECT().ExportAll(gomock.Any(), pid).Return(nil, dErrors.New(dErrors.CodeNotFound, "participant not found"))
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/participants/"+pid.String()+"/export"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})

	s.Run("decryption failure hides detail", func() {
		s.rights.EXPECT().ExportAll(gomock.Any(), pid).
			Return(nil, dErrors.Wrap(errors.New("chacha20poly1305: message authentication failed"), dErrors.CodeDecryptionFailed, "answer could not be decrypted"))
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/participants/"+pid.String()+"/export"))
		s.Equal(http.StatusInternalServerError, rr.Code)
		s.NotContains(rr.Body.String(), "chacha20poly1305")
	})
}

func (s *DataRightsHandlerSuite) TestErase() {
	pid := id.NewParticipantID()

	s.Run("complete erasure", func() {
		s.rights.EXPECT().EraseAll(gomock.Any(), pid).Return(&models.ErasureReport{ParticipantID: pid.String(), Complete: true}, nil)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodDelete, "/participants/"+pid.String()))
		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[models.ErasureReport](s.T(), rr)
		s.True(resp.Complete)
	})

	s.Run("tombstone kept", func() {
		s.rights.EXPECT().EraseAll(gomock.Any(), pid).Return(&models.ErasureReport{
			ParticipantID: pid.String(),
			Steps: []models.StepResult{
				{Step: models.StepFlags, Error: "failed to erase flags"},
				{Step: models.StepParticipant, Skipped: true},
			},
		}, nil)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodDelete, "/participants/"+pid.String()))
		testutil.AssertStatus(s.T(), rr, http.StatusAccepted)
		resp := testutil.UnmarshalResponse[models.ErasureReport](s.T(), rr)
		s.Equal([]string{"flags"}, resp.FailedSteps())
	})

	s.Run("invalid id", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodDelete, "/participants/nope"))
		s.Equal(http.StatusBadRequest, rr.Code)
	})
}
