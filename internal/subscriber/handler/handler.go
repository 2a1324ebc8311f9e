// Package handler exposes the newsletter subscription endpoint.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leaders/internal/platform/middleware"
	"leaders/internal/subscriber/service"
	"leaders/internal/transport/http/shared"
	dErrors "leaders/pkg/domain-errors"
)

// Service defines the subscription operation the API needs.
type Service interface {
	Subscribe(ctx context.Context, email string) (service.Outcome, error)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

type subscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Handler handles the subscription endpoint.
type Handler struct {
	logger      *slog.Logger
	subscribers Service
}

// New creates a new subscriber Handler.
func New(subscribers Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, subscribers: subscribers}
}

// Register registers the subscription route.
func (h *Handler) Register(r chi.Router) {
	r.Post("/subscribe", h.handleSubscribe)
}

func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Please provide a valid email address"))
		return
	}

	outcome, err := h.subscribers.Subscribe(ctx, req.Email)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeBadRequest) {
			h.logger.ErrorContext(ctx, "failed to subscribe",
				"request_id", middleware.GetRequestID(ctx),
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}

	message := "Successfully subscribed!"
	if outcome.AlreadySubscribed {
		message = "You are already subscribed!"
	}
	shared.WriteJSON(w, http.StatusOK, subscribeResponse{Success: true, Message: message})
}
