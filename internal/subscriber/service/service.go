// Package service implements the newsletter subscription flow: validate
// the address, record it once, and report duplicates as a friendly
// success rather than an error.
package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"leaders/internal/subscriber/metrics"
	"leaders/internal/subscriber/models"
	"leaders/internal/subscriber/store"
	dErrors "leaders/pkg/domain-errors"
	"leaders/pkg/platform/sentinel"
	"leaders/pkg/requestcontext"
)

// Hook runs after a new subscription commits, off the request path.
// Welcome emails hang off this.
type Hook func(ctx context.Context, email string) error

// Outcome tells the caller whether the address was newly recorded or was
// already on the list. Both are successes to the subscriber.
type Outcome struct {
	Email             string
	AlreadySubscribed bool
}

type Service struct {
	subscribers store.Store
	hooks       []Hook
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

type Option func(*Service)

// WithHook appends a post-commit hook. Hooks run concurrently with the
// response; failures are logged and never surfaced to the subscriber.
func WithHook(h Hook) Option {
	return func(s *Service) {
		s.hooks = append(s.hooks, h)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(subscribers store.Store, opts ...Option) *Service {
	s := &Service{
		subscribers: subscribers,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe records an email address. Invalid addresses are rejected
// before the store is touched. A duplicate address returns a successful
// Outcome with AlreadySubscribed set; hooks do not fire for duplicates.
func (s *Service) Subscribe(ctx context.Context, email string) (Outcome, error) {
	normalized := models.NormalizeEmail(email)
	if !models.ValidEmail(normalized) {
		return Outcome{}, dErrors.New(dErrors.CodeBadRequest, "Please provide a valid email address")
	}

	if s.subscribers == nil {
		return Outcome{}, dErrors.New(dErrors.CodeUnavailable, "Database binding not configured")
	}

	sub := models.New(normalized, requestcontext.Now(ctx))
	if err := s.subscribers.Insert(ctx, sub); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			s.metrics.IncDuplicateSubscriptions()
			return Outcome{Email: normalized, AlreadySubscribed: true}, nil
		}
		return Outcome{}, dErrors.Wrap(err, dErrors.CodeInternal, "Failed to subscribe. Please try again.")
	}

	s.metrics.IncSubscriptionsCreated()
	s.runHooks(ctx, normalized)
	return Outcome{Email: normalized}, nil
}

// runHooks detaches from the request context so a finished request does
// not cancel in-flight side effects.
func (s *Service) runHooks(ctx context.Context, email string) {
	if len(s.hooks) == 0 {
		return
	}
	detached := context.WithoutCancel(ctx)
	for _, hook := range s.hooks {
		go func(h Hook) {
			if err := h(detached, email); err != nil {
				s.logger.Error("subscription hook failed", "email", email, "error", err)
			}
		}(hook)
	}
}
