// Package httptransport assembles the HTTP surface: the JSON API under
// /api, the server-rendered pages, and the operational endpoints.
package httptransport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	candidatehandler "leaders/internal/candidate/handler"
	"leaders/internal/platform/middleware"
	subscriberhandler "leaders/internal/subscriber/handler"
	"leaders/internal/web"
)

// Deps collects everything the router needs so main wires it in one call.
type Deps struct {
	Candidates  *candidatehandler.Handler
	Subscribers *subscriberhandler.Handler
	Pages       *web.Handler
	Middleware  []func(http.Handler) http.Handler
}

// apiTimeout bounds a single API request end to end.
const apiTimeout = 30 * time.Second

// NewRouter wires all endpoints. The API subtree is open to cross-origin
// callers; pages and operational endpoints are same-origin only.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	for _, mw := range deps.Middleware {
		r.Use(mw)
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.CORS)
		api.Use(middleware.Timeout(apiTimeout))
		deps.Candidates.Register(api)
		deps.Subscribers.Register(api)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	deps.Pages.Register(r)
	return r
}
