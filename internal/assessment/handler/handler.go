package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"radar/internal/assessment/models"
	consentModels "radar/internal/consent/models"
	"radar/internal/radar/aggregator"
	radarModels "radar/internal/radar/models"
	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
	"radar/pkg/platform/httputil"
	"radar/pkg/requestcontext"
)

// Service defines the lifecycle operations the handler needs.
type Service interface {
	Create(ctx context.Context, email, authUserID string) (*models.Participant, bool, error)
	StartAssessment(ctx context.Context, participantID id.ParticipantID, meta consentModels.Metadata) (*models.Participant, error)
	SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest) (*models.Answer, error)
	Complete(ctx context.Context, participantID id.ParticipantID) (*radarModels.Profile, error)
	RequestDeletion(ctx context.Context, participantID id.ParticipantID, meta consentModels.Metadata) (*models.Participant, error)
	Get(ctx context.Context, participantID id.ParticipantID) (*models.Participant, error)
	GetAdmin(ctx context.Context, participantID id.ParticipantID) (*models.Participant, error)
	Questionnaire() []aggregator.Question
	Question(number int) (aggregator.Question, bool)
}

// TokenIssuer mints participant-scoped bearer tokens.
type TokenIssuer interface {
	IssueParticipantToken(participantID string, expiresIn time.Duration) (string, time.Time, error)
}

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

const deletionConsentText = "participant requested deletion"

type Handler struct {
	participants Service
	tokens       TokenIssuer
	tokenTTL     time.Duration
	logger       *zap.Logger
}

func New(participants Service, tokens TokenIssuer, tokenTTL time.Duration, logger *zap.Logger) *Handler {
	return &Handler{participants: participants, tokens: tokens, tokenTTL: tokenTTL, logger: logger}
}

// Register mounts participant routes. The router applies authentication and
// the participant access check.
func (h *Handler) Register(r chi.Router) {
	r.Get("/participants/{id}", h.HandleGet)
	r.Post("/participants/{id}/start", h.HandleStart)
	r.Put("/participants/{id}/answers/{question}", h.HandleSubmitAnswer)
	r.Post("/participants/{id}/complete", h.HandleComplete)
	r.Post("/participants/{id}/deletion-request", h.HandleRequestDeletion)
}

// RegisterOrganizer mounts participant registration, which needs the
// organizer capability.
func (h *Handler) RegisterOrganizer(r chi.Router) {
	r.Post("/participants", h.HandleCreate)
}

func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/questionnaire", h.HandleQuestionnaire)
}

func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/admin/participants/{id}", h.HandleAdminGet)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.CreateParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	p, created, err := h.participants.Create(ctx, req.Email, req.AuthUserID)
	if err != nil {
		h.logError(ctx, "failed to create participant", err)
		httputil.WriteError(w, err)
		return
	}
	token, expiresAt, err := h.tokens.IssueParticipantToken(p.ID.String(), h.tokenTTL)
	if err != nil {
		h.logError(ctx, "failed to issue participant token", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token"))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httputil.WriteJSON(w, status, models.CreateParticipantResponse{
		ParticipantResponse: models.ToResponse(p),
		Created:             created,
		AccessToken:         token,
		TokenExpiresAt:      expiresAt,
	})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	participantID, ok := participantParam(w, r)
	if !ok {
		return
	}
	p, err := h.participants.Get(r.Context(), participantID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.ToResponse(p))
}

func (h *Handler) HandleAdminGet(w http.ResponseWriter, r *http.Request) {
	participantID, ok := participantParam(w, r)
	if !ok {
		return
	}
	p, err := h.participants.GetAdmin(r.Context(), participantID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.ToResponse(p))
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	participantID, ok := participantParam(w, r)
	if !ok {
		return
	}
	var req models.StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	p, err := h.participants.StartAssessment(ctx, participantID, consentMetadata(ctx, req.ConsentText))
	if err != nil {
		h.logError(ctx, "failed to start assessment", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.ToResponse(p))
}

func (h *Handler) HandleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	participantID, ok := participantParam(w, r)
	if !ok {
		return
	}
	number, err := strconv.Atoi(chi.URLParam(r, "question"))
	if err != nil || number < 1 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "question must be a positive integer"))
		return
	}
	question, found := h.participants.Question(number)
	if !found {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("question %d not found", number)))
		return
	}

	var body models.SubmitAnswerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := body.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	answer, err := h.participants.SubmitAnswer(ctx, models.SubmitAnswerRequest{
		ParticipantID:  participantID,
		QuestionNumber: question.Number,
		Text:           body.Answer,
		Sensitive:      question.Sensitive,
	})
	if err != nil {
		h.logError(ctx, "failed to submit answer", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.SubmitAnswerResponse{
		QuestionNumber: answer.QuestionNumber,
		Encrypted:      answer.Encrypted,
		AnsweredAt:     answer.AnsweredAt,
	})
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	participantID, ok := participantParam(w, r)
	if !ok {
		return
	}
	profile, err := h.participants.Complete(ctx, participantID)
	if err != nil {
		h.logError(ctx, "failed to complete assessment", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, radarModels.ToResponse(profile))
}

func (h *Handler) HandleRequestDeletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	participantID, ok := participantParam(w, r)
	if !ok {
		return
	}
	p, err := h.participants.RequestDeletion(ctx, participantID, consentMetadata(ctx, deletionConsentText))
	if err != nil {
		h.logError(ctx, "failed to request deletion", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, models.ToResponse(p))
}

func (h *Handler) HandleQuestionnaire(w http.ResponseWriter, _ *http.Request) {
	questions := h.participants.Questionnaire()
	resp := models.QuestionnaireResponse{Questions: make([]models.QuestionResponse, 0, len(questions))}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, models.QuestionResponse{
			Number:    q.Number,
			Text:      q.Text,
			Required:  q.Required,
			Sensitive: q.Sensitive,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func participantParam(w http.ResponseWriter, r *http.Request) (id.ParticipantID, bool) {
	participantID, err := id.ParseParticipantID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return id.ParticipantID{}, false
	}
	return participantID, true
}

func consentMetadata(ctx context.Context, text string) consentModels.Metadata {
	return consentModels.Metadata{
		Text:      text,
		IPAddress: requestcontext.ClientIP(ctx),
		UserAgent: requestcontext.UserAgent(ctx),
	}
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	fields := []zap.Field{
		zap.String("request_id", requestcontext.RequestID(ctx)),
		zap.Error(err),
	}
	if dErrors.IsIntegrityFailure(err) {
		h.logger.Error(msg, fields...)
		return
	}
	h.logger.Warn(msg, fields...)
}
