package store

import (
	"context"
	"database/sql"
	"fmt"

	"leaders/internal/candidate/models"
)

// Postgres reads candidates from PostgreSQL.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed candidate store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Narrative columns are nullable in the schema; COALESCE keeps the row
// model free of sql.Null wrappers.
const listQuery = `
	SELECT id, name,
		COALESCE(state, ''), COALESCE(district, ''),
		COALESCE(office_level, ''), COALESCE(office_type, ''),
		COALESCE(party, ''), COALESCE(is_incumbent, FALSE),
		COALESCE(age, 0), COALESCE(heritage, ''),
		COALESCE(background, ''), COALESCE(family_background, ''),
		COALESCE(career_before_politics, ''), COALESCE(education, ''),
		COALESCE(awards, ''), COALESCE(key_issues, ''),
		COALESCE(notable_legislation, ''), COALESCE(endorsements, ''),
		COALESCE(committees, ''), COALESCE(leadership_roles, ''),
		COALESCE(image_url, ''), COALESCE(website, ''),
		COALESCE(twitter, ''), COALESCE(instagram, ''),
		COALESCE(tiktok, ''), COALESCE(facebook, '')
	FROM candidates
	ORDER BY name ASC
`

func (s *Postgres) List(ctx context.Context) ([]models.Candidate, error) {
	rows, err := s.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var out []models.Candidate
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(
			&c.ID, &c.Name,
			&c.State, &c.District,
			&c.OfficeLevel, &c.OfficeType,
			&c.Party, &c.IsIncumbent,
			&c.Age, &c.Heritage,
			&c.Background, &c.FamilyBackground,
			&c.CareerBeforePolitics, &c.Education,
			&c.Awards, &c.KeyIssues,
			&c.NotableLegislation, &c.Endorsements,
			&c.Committees, &c.LeadershipRoles,
			&c.ImageURL, &c.Website,
			&c.Twitter, &c.Instagram,
			&c.TikTok, &c.Facebook,
		); err != nil {
			return nil, fmt.Errorf("scan candidate row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidate rows: %w", err)
	}
	return out, nil
}
