// Package normalize converts raw matched fragments into canonical field values.
//
// Every function is pure and total: a fragment that cannot be normalized yields ("", false)
// and never a partially cleaned value.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// StripAccents removes combining marks, so "März" becomes "Marz" and "février" "fevrier".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// CollapseSpace trims s and folds every whitespace run into one space.
func CollapseSpace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// Text normalizes a free-text label value such as an account type or an authority name.
func Text(s string) (string, bool) {
	out := strings.Trim(CollapseSpace(s), " :;,-")
	if out == "" {
		return "", false
	}
	return out, true
}

// Name renders a person or company name as "First Last".
func Name(s string) (string, bool) {
	parts := strings.Fields(s)
	switch len(parts) {
	case 0:
		return "", false
	case 1:
		return title(parts[0]), true
	}

	out := make([]string, len(parts))
	out[0] = capitalize(parts[0])
	for i, p := range parts[1:] {
		out[i+1] = title(p)
	}
	return strings.Join(out, " "), true
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// title upper-cases every letter that follows a non-letter, so "o'neil" becomes "O'Neil".
func title(s string) string {
	r := []rune(s)
	prevLetter := false
	for i, c := range r {
		if prevLetter {
			r[i] = unicode.ToLower(c)
		} else {
			r[i] = unicode.ToUpper(c)
		}
		prevLetter = unicode.IsLetter(c)
	}
	return string(r)
}
