// Package handler exposes the candidate read API.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leaders/internal/candidate/models"
	"leaders/internal/platform/middleware"
	"leaders/internal/transport/http/shared"
	dErrors "leaders/pkg/domain-errors"
)

// Service defines the candidate operations the API needs.
type Service interface {
	List(ctx context.Context) ([]models.Candidate, error)
	FindBySlug(ctx context.Context, slug string) (models.Candidate, error)
}

// Handler handles the candidate endpoints. It delegates to the service
// without embedding business logic so transport concerns stay isolated.
type Handler struct {
	logger     *slog.Logger
	candidates Service
}

// New creates a new candidate Handler.
func New(candidates Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, candidates: candidates}
}

// Register registers the candidate routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/candidates", h.handleList)
	r.Get("/candidate/{slug}", h.handleGet)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.candidates.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to fetch candidates",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	if list == nil {
		list = []models.Candidate{}
	}
	shared.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	candidate, err := h.candidates.FindBySlug(ctx, slug)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to fetch candidate",
				"request_id", middleware.GetRequestID(ctx),
				"slug", slug,
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, candidate)
}
