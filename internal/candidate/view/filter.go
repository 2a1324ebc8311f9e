// Package view derives render-ready view-models from candidate records.
// Everything here is pure: the rendering layer applies the computed data,
// and no function mutates its input collection.
package view

import (
	"strings"

	"leaders/internal/candidate/models"
)

// CategoryAll matches every office level.
const CategoryAll = "all"

// Filter is the owned filter state for the candidate list: a category
// (office level) and a free-text search. Zero value matches everything.
type Filter struct {
	Category string
	Search   string
}

// Summary reports how many candidates survived the filter.
type Summary struct {
	Visible int
	Total   int
}

// Apply returns the candidates matching the filter plus a count summary.
// Both predicates compose; applying the same filter twice yields the same
// subset. The input slice is never modified.
func Apply(candidates []models.Candidate, f Filter) ([]models.Candidate, Summary) {
	visible := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if f.matchesCategory(c) && f.matchesSearch(c) {
			visible = append(visible, c)
		}
	}
	return visible, Summary{Visible: len(visible), Total: len(candidates)}
}

func (f Filter) matchesCategory(c models.Candidate) bool {
	category := strings.TrimSpace(f.Category)
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return true
	}
	return strings.EqualFold(category, c.OfficeLevel)
}

func (f Filter) matchesSearch(c models.Candidate) bool {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.State), needle)
}
