package models

// Candidate is a read-only copy of one row from the candidates table. The
// store owns the schema; this type only mirrors the columns the site
// consumes. The slug is derived from Name and State at read time, never
// persisted.
//
// KeyIssues is a comma-separated list serialized as plain text.
// NotableLegislation, Endorsements and Committees arrive in one of two
// shapes: a JSON-encoded array (of strings or objects) or a plain delimited
// string. ParseFlexList handles both.
type Candidate struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	State                string `json:"state,omitempty"`
	District             string `json:"district,omitempty"`
	OfficeLevel          string `json:"office_level,omitempty"`
	OfficeType           string `json:"office_type,omitempty"`
	Party                string `json:"party,omitempty"`
	IsIncumbent          bool   `json:"is_incumbent,omitempty"`
	Age                  int    `json:"age,omitempty"`
	Heritage             string `json:"heritage,omitempty"`
	Background           string `json:"background,omitempty"`
	FamilyBackground     string `json:"family_background,omitempty"`
	CareerBeforePolitics string `json:"career_before_politics,omitempty"`
	Education            string `json:"education,omitempty"`
	Awards               string `json:"awards,omitempty"`
	KeyIssues            string `json:"key_issues,omitempty"`
	NotableLegislation   string `json:"notable_legislation,omitempty"`
	Endorsements         string `json:"endorsements,omitempty"`
	Committees           string `json:"committees,omitempty"`
	LeadershipRoles      string `json:"leadership_roles,omitempty"`
	ImageURL             string `json:"image_url,omitempty"`
	Website              string `json:"website,omitempty"`
	Twitter              string `json:"twitter,omitempty"`
	Instagram            string `json:"instagram,omitempty"`
	TikTok               string `json:"tiktok,omitempty"`
	Facebook             string `json:"facebook,omitempty"`
}
