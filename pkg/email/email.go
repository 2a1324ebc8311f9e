// Package email derives display values from email addresses for outbound
// mail personalization.
package email

import (
	"strings"
	"unicode"
)

// DisplayName guesses a greeting name from the local part of an address.
// "maria.lopez@example.com" becomes "Maria". Falls back to "there" so a
// greeting like "Hi there," still reads naturally.
func DisplayName(addr string) string {
	localPart := addr
	if at := strings.IndexByte(addr, '@'); at > 0 {
		localPart = addr[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(parts) == 0 {
		return "there"
	}

	first := capitalize(parts[0])
	if !isWordLike(first) {
		return "there"
	}
	return first
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// isWordLike rejects all-digit local parts such as "12345@example.com".
func isWordLike(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
