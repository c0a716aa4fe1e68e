package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"radar/internal/datarights/models"
	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
	"radar/pkg/platform/httputil"
	"radar/pkg/requestcontext"
)

// Service is the data rights surface exposed over HTTP.
type Service interface {
	ExportAll(ctx context.Context, participantID id.ParticipantID) (*models.Bundle, error)
	EraseAll(ctx context.Context, participantID id.ParticipantID) (*models.ErasureReport, error)
}

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

type Handler struct {
	rights Service
	logger *zap.Logger
}

func New(rights Service, logger *zap.Logger) *Handler {
	return &Handler{rights: rights, logger: logger}
}

// Register mounts the export and erasure routes. The router wraps them with
// authentication and participant access checks.
func (h *Handler) Register(r chi.Router) {
	r.Get("/participants/{id}/export", h.HandleExport)
	r.Delete("/participants/{id}", h.HandleErase)
}

func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	participantID, err := id.ParseParticipantID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	bundle, err := h.rights.ExportAll(ctx, participantID)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.Error("failed to export participant data",
				zap.String("request_id", requestcontext.RequestID(ctx)),
				zap.Error(err),
			)
		}
		httputil.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="radar-export-`+participantID.String()+`.json"`)
	httputil.WriteJSON(w, http.StatusOK, bundle)
}

// HandleErase answers 200 when everything is gone and 202 when a tombstone
// was kept for the purge job to finish.
func (h *Handler) HandleErase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	participantID, err := id.ParseParticipantID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	report, err := h.rights.EraseAll(ctx, participantID)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.Error("failed to erase participant",
				zap.String("request_id", requestcontext.RequestID(ctx)),
				zap.Error(err),
			)
		}
		httputil.WriteError(w, err)
		return
	}
	status := http.StatusOK
	if !report.Complete {
		status = http.StatusAccepted
	}
	httputil.WriteJSON(w, status, report)
}
