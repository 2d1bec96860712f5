// Package topic derives a short display headline for a cluster from the
// term frequencies of its member titles.
package topic

import (
	"math/rand"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/prismanews/prisma/internal/news"
	"github.com/prismanews/prisma/internal/textnorm"
)

// prefixes only add display variety; which one is picked never changes the
// substantive part of the headline.
var prefixes = []string{
	"Claves informativas:",
	"Tema principal:",
	"En el foco:",
	"Lo destacado:",
}

// blacklist removes institutional nouns and temporal fillers that dominate
// political headlines without describing the topic.
var blacklist = map[string]bool{
	"gobierno": true, "congreso": true, "senado": true, "ministro": true,
	"ministra": true, "ministerio": true, "presidente": true, "presidenta": true,
	"partido": true, "nuevo": true, "nueva": true, "primer": true, "primera": true,
	"años": true, "año": true, "horas": true, "semana": true, "directo": true,
	"última": true, "últimas": true, "último": true, "vídeo": true, "video": true,
	"fotos": true, "today": true, "latest": true, "news": true, "minister": true,
	"government": true, "president": true, "week": true, "year": true,
}

// maxTerms is how many top terms make it into the headline.
const maxTerms = 3

// Extractor builds headlines. The random source is injectable so tests can
// pin the prefix choice.
type Extractor struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Extractor {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Extractor{rng: rng}
}

// Headline returns "<prefix> <Top terms>" for the cluster members named by
// indices. Terms are ranked by frequency across all member titles; ties keep
// first-appearance order.
func (e *Extractor) Headline(indices []int, items []news.Item) string {
	terms := TopTerms(indices, items, maxTerms)
	prefix := prefixes[e.rng.Intn(len(prefixes))]
	return strings.TrimSpace(prefix + " " + capitalize(joinTerms(terms)))
}

// TopTerms counts normalized tokens over the member titles, drops the
// blacklist and returns up to n terms by descending frequency.
func TopTerms(indices []int, items []news.Item, n int) []string {
	counts := make(map[string]int)
	var order []string

	for _, idx := range indices {
		if idx < 0 || idx >= len(items) {
			continue
		}
		for _, tok := range textnorm.Tokenize(items[idx].Title) {
			if blacklist[tok] {
				continue
			}
			if counts[tok] == 0 {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

// joinTerms renders "X", "X y Y" or "X, Y y Z".
func joinTerms(terms []string) string {
	switch len(terms) {
	case 0:
		return "actualidad"
	case 1:
		return terms[0]
	case 2:
		return terms[0] + " y " + terms[1]
	default:
		return strings.Join(terms[:len(terms)-1], ", ") + " y " + terms[len(terms)-1]
	}
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
