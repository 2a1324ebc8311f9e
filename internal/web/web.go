// Package web serves the HTML pages: the filterable candidate list and
// the candidate profile. Pages render server-side from the same service
// the JSON API uses.
package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leaders/internal/candidate/models"
	"leaders/internal/candidate/view"
	"leaders/internal/platform/middleware"
	dErrors "leaders/pkg/domain-errors"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Service defines the candidate reads the pages need.
type Service interface {
	List(ctx context.Context) ([]models.Candidate, error)
	FindBySlug(ctx context.Context, slug string) (models.Candidate, error)
}

type Handler struct {
	logger     *slog.Logger
	candidates Service
	siteName   string
	templates  *template.Template
}

func New(candidates Service, siteName string, logger *slog.Logger) *Handler {
	return &Handler{
		logger:     logger,
		candidates: candidates,
		siteName:   siteName,
		templates:  template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Register registers the page routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/candidate/{slug}", h.handleDetail)
	r.Handle("/static/*", http.FileServer(http.FS(staticFS)))
}

type indexPage struct {
	SiteName string
	Filter   view.Filter
	Summary  view.Summary
	Cards    []view.Card
	State    view.LoadState
}

type detailPage struct {
	SiteName string
	Detail   view.Detail
	State    view.LoadState
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := view.Filter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}

	page := indexPage{SiteName: h.siteName, Filter: filter}

	candidates, err := h.candidates.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to render candidate list",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		page.State = view.Failed(err)
		h.render(w, dErrors.ToHTTPStatus(dErrors.CodeOf(err)), "index.html", page)
		return
	}

	visible, summary := view.Apply(candidates, filter)
	cards := make([]view.Card, 0, len(visible))
	for _, c := range visible {
		cards = append(cards, view.NewCard(c))
	}

	page.State = view.Ready()
	page.Summary = summary
	page.Cards = cards
	h.render(w, http.StatusOK, "index.html", page)
}

func (h *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	page := detailPage{SiteName: h.siteName}

	candidate, err := h.candidates.FindBySlug(ctx, slug)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to render candidate page",
				"request_id", middleware.GetRequestID(ctx),
				"slug", slug,
				"error", err.Error(),
			)
		}
		page.State = view.Failed(err)
		h.render(w, dErrors.ToHTTPStatus(dErrors.CodeOf(err)), "candidate.html", page)
		return
	}

	page.State = view.Ready()
	page.Detail = view.NewDetail(candidate)
	h.render(w, http.StatusOK, "candidate.html", page)
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("template render failed", "template", name, "error", err.Error())
	}
}
