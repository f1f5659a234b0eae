// Package slug derives URL-safe identifiers from post bodies.
package slug

import (
	"strings"
	"unicode"
)

// postSlugPrefixLen is how many leading characters of a post body feed the
// slug. Measured in runes so multi-byte input does not split mid-character.
const postSlugPrefixLen = 30

// Make converts arbitrary text into a slug: lowercase, keep letters,
// digits, underscores and hyphens, collapse whitespace and hyphen runs into
// a single hyphen, and strip leading/trailing hyphens and underscores.
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r) || r == '-':
			pendingSep = true
		default:
			// Dropped entirely; does not act as a separator.
		}
	}

	return strings.Trim(b.String(), "-_")
}

// ForPost returns the slug for a post body: the slugified first 30
// characters of the body.
func ForPost(body string) string {
	runes := []rune(body)
	if len(runes) > postSlugPrefixLen {
		runes = runes[:postSlugPrefixLen]
	}
	return Make(string(runes))
}
