// Package textnorm cleans and tokenizes headline text for the rest of the
// pipeline. All functions are pure; they never touch global state.
package textnorm

import (
	"html"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// CleanHTML decodes HTML entities, strips any markup and collapses runs of
// whitespace to a single space. Feed titles frequently arrive with embedded
// tags or encoded entities; the cleaned form is what gets embedded and shown.
func CleanHTML(raw string) string {
	s := html.UnescapeString(raw)
	if strings.ContainsRune(s, '<') {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			s = doc.Text()
		}
	}
	return strings.Join(strings.Fields(s), " ")
}

// Tokenize lowercases the text, removes punctuation and returns the remaining
// words minus stopwords and tokens shorter than minTokenRunes runes.
func Tokenize(raw string) []string {
	s := strings.ToLower(CleanHTML(raw))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if stopwords[w] {
			continue
		}
		if len([]rune(w)) < minTokenRunes {
			continue
		}
		out = append(out, w)
	}
	return out
}

const minTokenRunes = 4
