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

	"radar/internal/radar/handler/mocks"
	"radar/internal/radar/models"
	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
	"radar/pkg/testutil"
)

type RadarHandlerSuite struct {
	suite.Suite
	radar  *mocks.MockService
	router chi.Router
}

func TestRadarHandlerSuite(t *testing.T) {
	suite.Run(t, new(RadarHandlerSuite))
}

func (s *RadarHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.radar = mocks.NewMockService(ctrl)
	s.router = chi.NewRouter()
	h := New(s.radar, zap.NewNop())
	h.Register(s.router)
	h.RegisterPublic(s.router)
}

func (s *RadarHandlerSuite) profile(pid id.ParticipantID) *models.Profile {
	return &models.Profile{
		ParticipantID: pid,
		Dimensions:    map[models.Dimension]float64{models.DimensionConsentLiteracy: 0.75},
		ComputedAt:    time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
	}
}

func (s *RadarHandlerSuite) TestRadar() {
	pid := id.NewParticipantID()
	s.radar.EXPECT().Radar(gomock.Any(), pid).Return(s.profile(pid), nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/participants/"+pid.String()+"/radar"))
	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[models.ProfileResponse](s.T(), rr)
	s.Equal(pid.String(), resp.ParticipantID)
	s.Equal(0.75, resp.Dimensions["consent_literacy"])
}

func (s *RadarHandlerSuite) TestRadarNotComputed() {
	pid := id.NewParticipantID()
	s.radar.EXPECT().Radar(gomock.Any(), pid).Return(nil, dErrors.New(dErrors.CodeNotFound, "radar profile not found"))

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/participants/"+pid.String()+"/radar"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
}

func (s *RadarHandlerSuite) TestPublicRadarWithoutConsent() {
	pid := id.NewParticipantID()
	s.radar.EXPECT().PublicRadar(gomock.Any(), pid).Return(nil, dErrors.New(dErrors.CodeConsentRequired, "public_radar consent required"))

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/participants/"+pid.String()+"/radar/public"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "consent_required")
}

func (s *RadarHandlerSuite) TestPublicRadar() {
	pid := id.NewParticipantID()
	s.radar.EXPECT().PublicRadar(gomock.Any(), pid).Return(s.profile(pid), nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/participants/"+pid.String()+"/radar/public"))
	testutil.AssertStatusOK(s.T(), rr)
}

func (s *RadarHandlerSuite) TestStorageFailureHidesDetail() {
	pid := id.NewParticipantID()
	s.radar.EXPECT().Radar(gomock.Any(), pid).Return(nil, dErrors.Wrap(errors.New("dial tcp 10.0.0.3:5432"), dErrors.CodeStorage, "load radar"))

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/participants/"+pid.String()+"/radar"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusServiceUnavailable, "storage_failure")
	s.NotContains(rr.Body.String(), "10.0.0.3")
}

func (s *RadarHandlerSuite) TestInvalidID() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/participants/not-a-uuid/radar"))
	s.Equal(http.StatusBadRequest, rr.Code)
}
