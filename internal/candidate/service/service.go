// Package service orchestrates candidate reads: store access, error
// translation, slug resolution and the cache fallback path.
package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	candidatemetrics "leaders/internal/candidate/metrics"
	"leaders/internal/candidate/models"
	"leaders/internal/candidate/slug"
	"leaders/internal/candidate/store"
	dErrors "leaders/pkg/domain-errors"
)

// cacheKey holds the JSON-encoded candidate collection.
const cacheKey = "candidates:all"

// Cache is the read-through cache surface; the platform Redis client
// satisfies it. A nil cache disables the fallback path.
type Cache interface {
	GetString(ctx context.Context, key string) (string, error)
	SetString(ctx context.Context, key, val string, ttl time.Duration) error
}

// Service resolves candidate collections and single candidates by slug.
type Service struct {
	candidates store.Store
	cache      Cache
	cacheTTL   time.Duration
	logger     *slog.Logger
	metrics    *candidatemetrics.Metrics
}

type serviceConfig struct {
	cache    Cache
	cacheTTL time.Duration
	logger   *slog.Logger
	metrics  *candidatemetrics.Metrics
}

type Option func(*serviceConfig)

// WithCache enables the store-failure fallback backed by the given cache.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(cfg *serviceConfig) {
		cfg.cache = c
		cfg.cacheTTL = ttl
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cfg *serviceConfig) { cfg.logger = l }
}

func WithMetrics(m *candidatemetrics.Metrics) Option {
	return func(cfg *serviceConfig) { cfg.metrics = m }
}

func New(candidates store.Store, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		candidates: candidates,
		cache:      cfg.cache,
		cacheTTL:   cfg.cacheTTL,
		logger:     cfg.logger,
		metrics:    cfg.metrics,
	}
}

// List returns every candidate ordered by name ascending. A missing store
// binding is a deployment error, distinct from a query failure. When the
// store fails and a cached copy exists, the stale copy is served instead;
// the cache itself is refreshed on every successful read.
func (s *Service) List(ctx context.Context) ([]models.Candidate, error) {
	if s.candidates == nil {
		return nil, dErrors.New(dErrors.CodeUnavailable, "Database binding not configured")
	}

	list, err := s.candidates.List(ctx)
	if err != nil {
		if cached, ok := s.fromCache(ctx); ok {
			s.logger.WarnContext(ctx, "serving candidates from cache, store unavailable",
				"error", err.Error(),
			)
			s.metrics.IncCacheFallbacks()
			return cached, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Failed to fetch candidates")
	}

	s.metrics.IncListsServed()
	s.toCache(ctx, list)
	return list, nil
}

// FindBySlug recomputes the slug for every candidate until one matches.
// O(n) per lookup; fine at this collection size. When two candidates share
// name and state the first in collection order wins.
func (s *Service) FindBySlug(ctx context.Context, wanted string) (models.Candidate, error) {
	s.metrics.IncSlugLookups()
	if wanted == "" {
		return models.Candidate{}, dErrors.New(dErrors.CodeNotFound, "Candidate not found")
	}

	list, err := s.List(ctx)
	if err != nil {
		return models.Candidate{}, err
	}

	for _, c := range list {
		if derived, ok := slug.Make(c.Name, c.State); ok && derived == wanted {
			return c, nil
		}
	}

	s.metrics.IncSlugMisses()
	return models.Candidate{}, dErrors.New(dErrors.CodeNotFound, "Candidate not found")
}

func (s *Service) fromCache(ctx context.Context) ([]models.Candidate, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.GetString(ctx, cacheKey)
	if err != nil || raw == "" {
		return nil, false
	}
	var list []models.Candidate
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, false
	}
	return list, true
}

// toCache is best effort; a cache write failure never fails the read.
func (s *Service) toCache(ctx context.Context, list []models.Candidate) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := s.cache.SetString(ctx, cacheKey, string(raw), s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "failed to cache candidate collection", "error", err.Error())
	}
}
