// Package store provides access to the candidates table, the external
// system of record. Implementations return read-only copies ordered by
// name ascending; callers never mutate stored rows.
package store

import (
	"context"

	"leaders/internal/candidate/models"
)

// Store is interface-driven so services stay testable and persistence can
// swap between in-memory and PostgreSQL without rewiring business code.
type Store interface {
	List(ctx context.Context) ([]models.Candidate, error)
}
