package view

import (
	"strconv"
	"strings"

	"leaders/internal/candidate/models"
	"leaders/internal/candidate/slug"
)

// Detail is the detail-page view-model. Each optional section carries its
// own Visible flag computed from field presence, so the rendering layer
// only applies the data and never inspects the record itself.
type Detail struct {
	Name      string
	Slug      string
	Initials  string
	ImageURL  string
	Badge     string
	Party     string
	Incumbent bool
	Position  string
	Meta      []string
	Website   string

	About        SectionText
	Heritage     SectionText
	Career       CareerSection
	Issues       SectionTags
	Legislation  SectionItems
	Endorsements SectionItems
	Committees   SectionItems
	QuickFacts   []Fact
	Social       []SocialLink
}

type SectionText struct {
	Visible bool
	Text    string
}

// CareerSection groups the three career blocks; visible when any is set.
type CareerSection struct {
	Visible        bool
	BeforePolitics string
	Education      string
	Awards         string
}

type SectionTags struct {
	Visible bool
	Tags    []string
}

type SectionItems struct {
	Visible bool
	Items   []models.FlexItem
}

type Fact struct {
	Label string
	Value string
}

type SocialLink struct {
	Label string
	URL   string
}

// NewDetail derives the full detail view-model from a candidate record.
func NewDetail(c models.Candidate) Detail {
	s, _ := slug.Make(c.Name, c.State)
	badge := OfficeBadge(c.OfficeLevel, c.OfficeType)

	d := Detail{
		Name:      c.Name,
		Slug:      s,
		Initials:  Initials(c.Name),
		ImageURL:  strings.TrimSpace(c.ImageURL),
		Badge:     badge,
		Party:     PartyName(c.Party),
		Incumbent: c.IsIncumbent,
		Position:  position(c, badge),
		Meta:      metaItems(c),
		Website:   c.Website,

		About:    textSection(c.Background),
		Heritage: textSection(c.FamilyBackground),
		Career: CareerSection{
			Visible:        c.CareerBeforePolitics != "" || c.Education != "" || c.Awards != "",
			BeforePolitics: c.CareerBeforePolitics,
			Education:      c.Education,
			Awards:         c.Awards,
		},
		Issues:       tagSection(c.KeyIssues),
		Legislation:  itemSection(c.NotableLegislation, ","),
		Endorsements: itemSection(c.Endorsements, ",;"),
		Committees:   itemSection(c.Committees, ","),
		QuickFacts:   quickFacts(c),
		Social:       socialLinks(c),
	}
	return d
}

func textSection(text string) SectionText {
	return SectionText{Visible: text != "", Text: text}
}

func tagSection(keyIssues string) SectionTags {
	tags := IssueTags(keyIssues, 0)
	return SectionTags{Visible: len(tags) > 0, Tags: tags}
}

func itemSection(raw, seps string) SectionItems {
	items := models.ParseFlexList(raw, seps)
	return SectionItems{Visible: len(items) > 0, Items: items}
}

func position(c models.Candidate, badge string) string {
	if c.District != "" {
		return c.State + "-" + TrimDistrict(c.State, c.District) + " " + badge
	}
	if c.State != "" {
		return c.State + " " + badge
	}
	return badge
}

func metaItems(c models.Candidate) []string {
	var meta []string
	if c.Age > 0 {
		meta = append(meta, "Age "+strconv.Itoa(c.Age))
	}
	if c.Heritage != "" {
		meta = append(meta, c.Heritage)
	}
	if c.LeadershipRoles != "" {
		meta = append(meta, c.LeadershipRoles)
	}
	return meta
}

func quickFacts(c models.Candidate) []Fact {
	var facts []Fact
	add := func(label, value string) {
		if value != "" {
			facts = append(facts, Fact{Label: label, Value: value})
		}
	}
	add("State", c.State)
	add("District", c.District)
	add("Office Level", capitalize(c.OfficeLevel))
	// The sidebar spells the party out in full, unlike the hero badge.
	switch c.Party {
	case "":
	case "D":
		add("Party", "Democratic")
	case "R":
		add("Party", "Republican")
	default:
		add("Party", "Independent")
	}
	if c.Age > 0 {
		add("Age", strconv.Itoa(c.Age))
	}
	add("Heritage", c.Heritage)
	add("Education", c.Education)
	if c.IsIncumbent {
		add("Incumbent", "Yes")
	} else {
		add("Incumbent", "No")
	}
	return facts
}

func socialLinks(c models.Candidate) []SocialLink {
	var links []SocialLink
	if c.Twitter != "" {
		links = append(links, SocialLink{
			Label: "Twitter",
			URL:   "https://twitter.com/" + strings.TrimPrefix(c.Twitter, "@"),
		})
	}
	if c.Instagram != "" {
		links = append(links, SocialLink{
			Label: "Instagram",
			URL:   "https://instagram.com/" + strings.TrimPrefix(c.Instagram, "@"),
		})
	}
	if c.TikTok != "" {
		links = append(links, SocialLink{
			Label: "TikTok",
			URL:   "https://tiktok.com/@" + strings.TrimPrefix(c.TikTok, "@"),
		})
	}
	if c.Facebook != "" {
		links = append(links, SocialLink{
			Label: "Facebook",
			URL:   "https://facebook.com/" + c.Facebook,
		})
	}
	return links
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

