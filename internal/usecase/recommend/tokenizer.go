package recommend

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// delimiters is the fixed set of characters that split free text into tokens.
var delimiters = map[rune]struct{}{
	' ': {}, '\t': {}, '\n': {}, '\r': {},
	',': {}, '.': {}, ';': {}, ':': {},
	'-': {}, '_': {}, '!': {}, '?': {},
	'(': {}, ')': {}, '[': {}, ']': {},
	'{': {}, '}': {}, '"': {},
}

// tokenize lower-cases text, splits it on the fixed delimiter set, drops
// empty fragments and stop-words, and strips diacritics from the survivors
// so accented and unaccented forms of the same root collapse to one term.
// It is pure and safe for concurrent use.
func tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	fragments := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		_, ok := delimiters[r]
		return ok
	})

	tokens := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		if _, stop := stopwords[frag]; stop {
			continue
		}
		tokens = append(tokens, foldDiacritics(frag))
	}
	return tokens
}

// foldDiacritics removes combining marks: NFD decomposition, drop the
// nonspacing marks, recompose. A fresh transformer chain per call keeps
// the function safe under concurrent scoring.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
