package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"radar/internal/flags/models"
	id "radar/pkg/domain"
	"radar/pkg/platform/httputil"
	"radar/pkg/requestcontext"
)

// Service defines the organizer flag operations.
type Service interface {
	ListForParticipant(ctx context.Context, participantID id.ParticipantID) ([]*models.Flag, error)
	Get(ctx context.Context, flagID id.FlagID) (*models.Flag, error)
	Review(ctx context.Context, flagID id.FlagID, reviewer string) (*models.Flag, error)
}

// ParticipantLookup rejects unknown and deleted participants.
type ParticipantLookup interface {
	EnsureActive(ctx context.Context, participantID id.ParticipantID) error
}

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

// Handler serves the organizer flag view. The router restricts it to callers
// holding the organizer role.
type Handler struct {
	flags        Service
	participants ParticipantLookup
	logger       *zap.Logger
}

func New(flags Service, participants ParticipantLookup, logger *zap.Logger) *Handler {
	return &Handler{flags: flags, participants: participants, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/organizer/participants/{id}/flags", h.HandleList)
	r.Post("/organizer/flags/{flagID}/review", h.HandleReview)
}

type listResponse struct {
	ParticipantID string                `json:"participant_id"`
	Flags         []models.FlagResponse `json:"flags"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	participantID, err := id.ParseParticipantID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.participants.EnsureActive(ctx, participantID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	flags, err := h.flags.ListForParticipant(ctx, participantID)
	if err != nil {
		h.logger.Error("failed to list flags", zap.String("request_id", requestcontext.RequestID(ctx)), zap.Error(err))
		httputil.WriteError(w, err)
		return
	}
	resp := listResponse{ParticipantID: participantID.String(), Flags: make([]models.FlagResponse, 0, len(flags))}
	for _, f := range flags {
		resp.Flags = append(resp.Flags, models.ToResponse(f))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	flagID, err := id.ParseFlagID(chi.URLParam(r, "flagID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	flag, err := h.flags.Get(ctx, flagID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.participants.EnsureActive(ctx, flag.ParticipantID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	reviewed, err := h.flags.Review(ctx, flagID, requestcontext.Subject(ctx))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.Info("flag reviewed",
		zap.String("flag_id", flagID.String()),
		zap.String("reviewer", reviewed.ReviewedBy),
	)
	httputil.WriteJSON(w, http.StatusOK, models.ToResponse(reviewed))
}
