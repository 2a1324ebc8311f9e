package view

import (
	"strings"

	"leaders/internal/candidate/models"
	"leaders/internal/candidate/slug"
)

// summaryLimit bounds the narrative excerpt shown on a card.
const summaryLimit = 180

// maxCardIssues caps the issue tags on a card; the detail view shows all.
const maxCardIssues = 3

// Card is the list-page view-model for one candidate.
type Card struct {
	Name      string
	Slug      string
	State     string
	District  string
	Category  string
	Badge     string
	Party     string
	Incumbent bool
	Initials  string
	ImageURL  string
	Summary   string
	Issues    []string
}

// NewCard derives a card from a candidate record. Pure and side-effect
// free; safe to call repeatedly on the same record.
func NewCard(c models.Candidate) Card {
	s, _ := slug.Make(c.Name, c.State)
	return Card{
		Name:      c.Name,
		Slug:      s,
		State:     c.State,
		District:  TrimDistrict(c.State, c.District),
		Category:  strings.ToLower(c.OfficeLevel),
		Badge:     OfficeBadge(c.OfficeLevel, c.OfficeType),
		Party:     PartyName(c.Party),
		Incumbent: c.IsIncumbent,
		Initials:  Initials(c.Name),
		ImageURL:  c.ImageURL,
		Summary:   Truncate(c.Background, summaryLimit),
		Issues:    IssueTags(c.KeyIssues, maxCardIssues),
	}
}

// Initials takes the first letter of the first two whitespace-separated
// name tokens, upper-cased. "??" stands in when the name is absent.
func Initials(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "??"
	}
	var b strings.Builder
	for i, tok := range tokens {
		if i == 2 {
			break
		}
		b.WriteString(strings.ToUpper(string([]rune(tok)[0])))
	}
	return b.String()
}

// OfficeBadge maps office level and type to the display badge.
func OfficeBadge(level, officeType string) string {
	switch strings.ToLower(level) {
	case "federal":
		return "U.S. Congress"
	case "state":
		if officeType != "" {
			return officeType
		}
		return "State Office"
	default:
		if officeType != "" {
			return officeType
		}
		return "Local Office"
	}
}

// PartyName expands a party code for display. Anything besides D and R
// renders as Independent; an absent party renders as nothing.
func PartyName(code string) string {
	switch code {
	case "":
		return ""
	case "D":
		return "Democrat"
	case "R":
		return "Republican"
	default:
		return "Independent"
	}
}

// TrimDistrict strips a duplicated state prefix from a district value, so
// state "NV" with district "NV-03" displays as "03".
func TrimDistrict(state, district string) string {
	if state == "" || district == "" {
		return district
	}
	prefix := state + "-"
	if len(district) > len(prefix) && strings.EqualFold(district[:len(prefix)], prefix) {
		return district[len(prefix):]
	}
	return district
}

// Truncate bounds s to limit runes, cutting at a word boundary where
// possible and appending an ellipsis marker.
func Truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	cut := string(runes[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;") + "…"
}

// IssueTags splits a comma-separated key_issues value into at most max
// short tags. A max of zero or less means no cap.
func IssueTags(keyIssues string, max int) []string {
	parts := strings.Split(keyIssues, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, p)
		if max > 0 && len(tags) == max {
			break
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
