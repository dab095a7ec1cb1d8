// Package names normalizes and compares person names.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes a person name for lookups and comparison.
// Lowercases, strips accents, drops punctuation and collapses whitespace,
// so "Penélope  Cruz" and "penelope cruz" fold to the same value.
func Fold(name string) string {
	s := strings.ToLower(name)
	s = removeAccents(s)

	// Hyphenated and dotted names ("Jean-Claude", "J.K.") split into words
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.ReplaceAll(s, "'", "")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
