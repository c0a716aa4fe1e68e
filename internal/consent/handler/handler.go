package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"radar/internal/consent/models"
	consentService "radar/internal/consent/service"
	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
	"radar/pkg/platform/httputil"
	"radar/pkg/requestcontext"
)

// Service reads the consent ledger.
type Service interface {
	History(ctx context.Context, subjectID id.ParticipantID) ([]*models.Record, error)
}

// Participants rejects unknown and deleted participants. RecordConsent checks
// the participant and appends the record in one transaction.
type Participants interface {
	EnsureActive(ctx context.Context, participantID id.ParticipantID) error
	RecordConsent(ctx context.Context, participantID id.ParticipantID, t id.ConsentType, granted bool, meta models.Metadata) (*models.Record, error)
}

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

// Handler serves /participants/{id}/consents. Authentication and participant
// access checks are applied by the router.
type Handler struct {
	consent      Service
	participants Participants
	logger       *zap.Logger
}

func New(consent Service, participants Participants, logger *zap.Logger) *Handler {
	return &Handler{consent: consent, participants: participants, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/participants/{id}/consents", h.HandleRecord)
	r.Get("/participants/{id}/consents", h.HandleHistory)
}

func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	participantID, err := id.ParseParticipantID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req models.RecordConsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	req.Normalize()
	consentType, err := req.Validate()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	record, err := h.participants.RecordConsent(ctx, participantID, consentType, *req.Granted, models.Metadata{
		Text:      req.Text,
		IPAddress: requestcontext.ClientIP(ctx),
		UserAgent: requestcontext.UserAgent(ctx),
	})
	if err != nil {
		h.logger.Error("failed to record consent",
			zap.String("request_id", requestcontext.RequestID(ctx)),
			zap.Error(err),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.ToResponse(record))
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	participantID, ok := h.participant(w, r)
	if !ok {
		return
	}
	history, err := h.consent.History(ctx, participantID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	resp := models.HistoryResponse{Records: make([]models.RecordResponse, 0, len(history)), Active: []string{}}
	for _, rec := range history {
		resp.Records = append(resp.Records, models.ToResponse(rec))
	}
	for _, t := range consentService.ActiveTypes(history) {
		resp.Active = append(resp.Active, t.String())
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) participant(w http.ResponseWriter, r *http.Request) (id.ParticipantID, bool) {
	participantID, err := id.ParseParticipantID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return id.ParticipantID{}, false
	}
	if err := h.participants.EnsureActive(r.Context(), participantID); err != nil {
		httputil.WriteError(w, err)
		return id.ParticipantID{}, false
	}
	return participantID, true
}
