// Package dedupe removes near-identical headlines before clustering.
package dedupe

import (
	"strings"

	"github.com/prismanews/prisma/internal/news"
	"github.com/prismanews/prisma/internal/vector"
)

// Options are the duplicate-detection cutoffs. Both live in (0,1); a lower
// SimilarityThreshold suppresses more aggressively.
type Options struct {
	SimilarityThreshold float32 // max cosine against kept vectors at or above this is a duplicate
	TitleRatio          float64 // character-level title similarity above this is a duplicate
}

// Dedupe filters items in input order, keeping the first-seen instance of
// every duplicate group. vecs must be parallel to items. A candidate is
// dropped when its link was already kept, when its vector is too close to any
// kept vector, or when its title is textually near-identical to a kept title
// (catches pairs the embedding under-scores).
func Dedupe(items []news.Item, vecs [][]float32, opts Options) ([]news.Item, [][]float32) {
	kept := make([]news.Item, 0, len(items))
	keptVecs := make([][]float32, 0, len(items))
	seenLinks := make(map[string]struct{}, len(items))

	for i, it := range items {
		if _, dup := seenLinks[it.Link]; dup {
			continue
		}

		if len(kept) > 0 {
			var maxSim float32
			for _, kv := range keptVecs {
				if s := vector.Cosine(vecs[i], kv); s > maxSim {
					maxSim = s
				}
			}
			if maxSim >= opts.SimilarityThreshold {
				continue
			}

			textualDup := false
			for _, k := range kept {
				if TitleSimilarity(it.Title, k.Title) > opts.TitleRatio {
					textualDup = true
					break
				}
			}
			if textualDup {
				continue
			}
		}

		seenLinks[it.Link] = struct{}{}
		kept = append(kept, it)
		keptVecs = append(keptVecs, vecs[i])
	}

	return kept, keptVecs
}

// TitleSimilarity is a character-bigram Dice coefficient over the lowercased,
// whitespace-collapsed titles. 1 means identical, 0 means no shared bigrams.
func TitleSimilarity(a, b string) float64 {
	ba := bigrams(a)
	bb := bigrams(b)
	if len(ba) == 0 || len(bb) == 0 {
		if normalizeTitle(a) == normalizeTitle(b) {
			return 1
		}
		return 0
	}

	shared := 0
	for g, n := range ba {
		if m := bb[g]; m > 0 {
			if m < n {
				shared += m
			} else {
				shared += n
			}
		}
	}

	total := 0
	for _, n := range ba {
		total += n
	}
	for _, n := range bb {
		total += n
	}
	return 2 * float64(shared) / float64(total)
}

func normalizeTitle(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func bigrams(s string) map[string]int {
	runes := []rune(normalizeTitle(s))
	out := make(map[string]int, len(runes))
	for i := 0; i+1 < len(runes); i++ {
		out[string(runes[i:i+2])]++
	}
	return out
}
