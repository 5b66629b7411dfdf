package kernel

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters into base letters plus combining
// marks and removes the marks, so "Álbum" becomes "Album".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize produces the canonical comparison form of a piece of text:
// diacritics stripped, lower-cased and trimmed. It is the sole identity key
// used when matching task titles, product names and category labels, so
// "Entregar Álbum" and "entregar album" compare equal.
//
// Normalize is a pure function with no side effects.
func Normalize(text string) string {
	stripped, _, err := transform.String(stripMarks, text)
	if err != nil {
		// The transform chain cannot fail on valid UTF-8; fall back to the
		// untransformed input for anything else.
		stripped = text
	}
	return strings.TrimSpace(strings.ToLower(stripped))
}

// NormalizeEmail produces the canonical comparison form of an email address:
// lower-cased and trimmed, diacritics preserved. Used when matching an order's
// customer email against contract client emails.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
