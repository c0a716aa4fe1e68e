package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"radar/internal/radar/models"
	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
	"radar/pkg/platform/httputil"
	"radar/pkg/requestcontext"
)

// Service resolves profiles for live participants. PublicRadar additionally
// requires an active public_radar consent.
type Service interface {
	Radar(ctx context.Context, participantID id.ParticipantID) (*models.Profile, error)
	PublicRadar(ctx context.Context, participantID id.ParticipantID) (*models.Profile, error)
}

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

type Handler struct {
	radar  Service
	logger *zap.Logger
}

func New(radar Service, logger *zap.Logger) *Handler {
	return &Handler{radar: radar, logger: logger}
}

// Register mounts the owner-facing route. The router wraps it with
// authentication and participant access checks.
func (h *Handler) Register(r chi.Router) {
	r.Get("/participants/{id}/radar", h.HandleRadar)
}

// RegisterPublic mounts the shareable route, which needs no bearer token.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/participants/{id}/radar/public", h.HandlePublicRadar)
}

func (h *Handler) HandleRadar(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.radar.Radar)
}

func (h *Handler) HandlePublicRadar(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.radar.PublicRadar)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, load func(context.Context, id.ParticipantID) (*models.Profile, error)) {
	ctx := r.Context()
	participantID, err := id.ParseParticipantID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	profile, err := load(ctx, participantID)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) && !dErrors.HasCode(err, dErrors.CodeConsentRequired) {
			h.logger.Error("failed to load radar profile",
				zap.String("request_id", requestcontext.RequestID(ctx)),
				zap.Error(err),
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.ToResponse(profile))
}
