package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subscriber is one newsletter signup. Email is the unique key; the ID
// exists for bookkeeping only.
type Subscriber struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// emailPattern is the documented address shape: no whitespace, a single
// "@", and a dot somewhere in the domain. Deliverability is not checked.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lower-cases an address so duplicates collapse
// to one row.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether a normalized address matches the accepted
// shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// New builds a subscriber for a normalized address.
func New(email string, now time.Time) *Subscriber {
	return &Subscriber{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: now,
	}
}
