// Package slug derives URL-safe candidate identifiers.
//
// A slug is recomputed from name and state on every use; it is never
// persisted, and no inverse exists. Resolving a slug means recomputing it
// over the collection and comparing, so two candidates sharing name and
// state collide silently: the first in collection order wins. Known
// limitation, kept as-is.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining diacritical marks after canonical
// decomposition, so "Doñate" reduces to "Donate".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make computes the slug for a candidate name and state. It reports ok as
// false when the name is empty; a missing state yields the name part alone.
// "Fabián Doñate" + "NV" becomes "fabian-donate-nv".
func Make(name, state string) (string, bool) {
	if name == "" {
		return "", false
	}

	lowered := strings.ToLower(name)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// transform failure leaves marks in place; they fall out below.
		stripped = lowered
	}

	var b strings.Builder
	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	namePart := strings.Join(strings.Fields(b.String()), "-")

	if state == "" {
		return namePart, true
	}
	return namePart + "-" + strings.ToLower(state), true
}
