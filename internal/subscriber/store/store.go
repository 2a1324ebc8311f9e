// Package store persists newsletter subscribers. The store serializes
// concurrent inserts; uniqueness on email is enforced here, not by
// callers.
package store

import (
	"context"

	"leaders/internal/subscriber/models"
)

// Store is interface-driven so the service stays testable and persistence
// can swap between in-memory and PostgreSQL without rewiring business
// code. Insert returns sentinel.ErrConflict when the email already exists.
type Store interface {
	Insert(ctx context.Context, sub *models.Subscriber) error
	Count(ctx context.Context) (int, error)
}
