package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaders/internal/candidate/models"
)

func fullCandidate() models.Candidate {
	return models.Candidate{
		ID:                   1,
		Name:                 "Fabián Doñate",
		State:                "NV",
		District:             "3",
		OfficeLevel:          "state",
		OfficeType:           "State Senate",
		Party:                "D",
		IsIncumbent:          true,
		Age:                  31,
		Heritage:             "Mexican-American",
		Background:           "Public health advocate.",
		FamilyBackground:     "Son of immigrants from Guadalajara.",
		CareerBeforePolitics: "Health policy researcher.",
		Education:            "UNLV",
		Awards:               "40 Under 40",
		KeyIssues:            "Health Care, Education",
		NotableLegislation:   `[{"title":"SB 420","description":"Prescription costs","status":"Signed"}]`,
		Endorsements:         "Culinary Union; League of Voters",
		Committees:           `[{"name":"Health and Human Services","role":"Chair"}]`,
		LeadershipRoles:      "Senate Majority Whip",
		Website:              "https://example.com",
		Twitter:              "@fdonate",
		TikTok:               "fdonate",
		Facebook:             "fdonatenv",
	}
}

func TestNewDetailSectionsVisible(t *testing.T) {
	d := NewDetail(fullCandidate())

	assert.True(t, d.About.Visible)
	assert.True(t, d.Heritage.Visible)
	assert.True(t, d.Career.Visible)
	assert.True(t, d.Issues.Visible)
	assert.True(t, d.Legislation.Visible)
	assert.True(t, d.Endorsements.Visible)
	assert.True(t, d.Committees.Visible)
}

func TestNewDetailSectionsHiddenWhenEmpty(t *testing.T) {
	d := NewDetail(models.Candidate{Name: "Ana Ruiz", State: "TX"})

	assert.False(t, d.About.Visible)
	assert.False(t, d.Heritage.Visible)
	assert.False(t, d.Career.Visible)
	assert.False(t, d.Issues.Visible)
	assert.False(t, d.Legislation.Visible)
	assert.False(t, d.Endorsements.Visible)
	assert.False(t, d.Committees.Visible)
	assert.Empty(t, d.Social)
}

func TestNewDetailPositionAndBadges(t *testing.T) {
	d := NewDetail(fullCandidate())

	assert.Equal(t, "State Senate", d.Badge)
	assert.Equal(t, "NV-3 State Senate", d.Position)
	assert.Equal(t, "Democrat", d.Party)
	assert.True(t, d.Incumbent)
	assert.Equal(t, []string{"Age 31", "Mexican-American", "Senate Majority Whip"}, d.Meta)
}

func TestNewDetailPositionWithoutDistrict(t *testing.T) {
	d := NewDetail(models.Candidate{Name: "Ana Ruiz", State: "TX", OfficeLevel: "federal"})
	assert.Equal(t, "TX U.S. Congress", d.Position)
}

func TestNewDetailFlexFields(t *testing.T) {
	d := NewDetail(fullCandidate())

	require.Len(t, d.Legislation.Items, 1)
	assert.Equal(t, "SB 420", d.Legislation.Items[0].Title)
	assert.Equal(t, "Signed", d.Legislation.Items[0].Status)

	// Plain text with semicolons splits into two endorsements.
	require.Len(t, d.Endorsements.Items, 2)
	assert.Equal(t, "Culinary Union", d.Endorsements.Items[0].Title)

	require.Len(t, d.Committees.Items, 1)
	assert.Equal(t, "Chair", d.Committees.Items[0].Detail)
}

func TestNewDetailQuickFacts(t *testing.T) {
	d := NewDetail(fullCandidate())

	labels := make(map[string]string, len(d.QuickFacts))
	for _, f := range d.QuickFacts {
		labels[f.Label] = f.Value
	}
	assert.Equal(t, "NV", labels["State"])
	assert.Equal(t, "State", labels["Office Level"])
	assert.Equal(t, "Democratic", labels["Party"])
	assert.Equal(t, "Yes", labels["Incumbent"])

	d = NewDetail(models.Candidate{Name: "Ana Ruiz"})
	for _, f := range d.QuickFacts {
		if f.Label == "Incumbent" {
			assert.Equal(t, "No", f.Value)
		}
	}
}

func TestNewDetailSocialLinks(t *testing.T) {
	d := NewDetail(fullCandidate())

	require.Len(t, d.Social, 3)
	assert.Equal(t, "https://twitter.com/fdonate", d.Social[0].URL)
	assert.Equal(t, "https://tiktok.com/@fdonate", d.Social[1].URL)
	assert.Equal(t, "https://facebook.com/fdonatenv", d.Social[2].URL)
}
