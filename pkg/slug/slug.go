// Package slug derives URL path segments from human titles.
package slug

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const Separator = '-'

// MaxLength bounds slugs stored in varchar(255) columns.
const MaxLength = 200

var transliterations = map[rune]string{
	'ß': "ss",
	'æ': "ae",
	'ø': "o",
	'đ': "d",
	'ð': "d",
	'ł': "l",
	'œ': "oe",
	'þ': "th",
	'ı': "i",
}

// Derive lower-cases title, strips diacritics, collapses every run of characters that are
// neither letters nor digits into a single separator and trims separators from both ends.
// The result is empty when title has no letters or digits.
func Derive(title string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		folded = title
	}
	folded = strings.ToLower(folded)

	var sb strings.Builder
	sb.Grow(len(folded))
	pendingSep := false
	for _, r := range folded {
		if t, ok := transliterations[r]; ok {
			if pendingSep && sb.Len() > 0 {
				sb.WriteRune(Separator)
			}
			pendingSep = false
			sb.WriteString(t)
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && sb.Len() > 0 {
				sb.WriteRune(Separator)
			}
			pendingSep = false
			sb.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return truncate(sb.String())
}

// Valid reports whether s is a non-empty slug in derived form.
func Valid(s string) bool {
	return s != "" && utf8.RuneCountInString(s) <= MaxLength && Derive(s) == s
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxLength {
		return s
	}
	r := []rune(s)[:MaxLength]
	return strings.TrimRight(string(r), string(Separator))
}
