// Package bias estimates which of two editorial leanings a cluster's
// language sits closer to. The output is a heuristic signal, not a claim of
// semantic correctness.
package bias

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/prismanews/prisma/internal/vector"
)

// Labels emitted by Score. Strong variants trigger when the percentage-point
// gap between the two leanings passes strongGap.
const (
	LabelBalanced           = "Cobertura equilibrada"
	LabelLeanProgressive    = "Enfoque algo progresista"
	LabelStrongProgressive  = "Enfoque marcadamente progresista"
	LabelLeanConservative   = "Enfoque algo conservador"
	LabelStrongConservative = "Enfoque marcadamente conservador"
)

const (
	epsilon   = 0.015 // raw similarity gap below this reads as balanced
	strongGap = 20.0  // percentage points
)

// Result is the per-cluster bias annotation. PctA is the progressive share,
// PctB the conservative one; they always sum to 100. Percentages are only
// meaningful relative to each other, never as absolute confidence.
type Result struct {
	Label string
	PctA  float64
	PctB  float64
}

// Phrases are the curated reference texts for each leaning, loaded once at
// startup and embedded into the reference centroid sets.
type Phrases struct {
	Progressive  []string `yaml:"progressive"`
	Conservative []string `yaml:"conservative"`
}

// LoadPhrases reads the reference phrase config.
func LoadPhrases(path string) (*Phrases, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read references config: %w", err)
	}
	var p Phrases
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse references config: %w", err)
	}
	if len(p.Progressive) == 0 || len(p.Conservative) == 0 {
		return nil, fmt.Errorf("references config %s: both leanings need at least one phrase", path)
	}
	return &p, nil
}

// Score compares the centroid of the cluster's member vectors against the two
// reference vector sets. refA is the progressive set, refB the conservative
// one. When both mean similarities are zero (degenerate vectors, empty
// references) the result defaults to an even 50/50 split.
func Score(memberVecs, refA, refB [][]float32) Result {
	centroid := vector.Mean(memberVecs)

	simA := meanSimilarity(centroid, refA)
	simB := meanSimilarity(centroid, refB)

	total := simA + simB
	if total == 0 {
		return Result{Label: LabelBalanced, PctA: 50, PctB: 50}
	}

	res := Result{
		PctA: simA / total * 100,
		PctB: simB / total * 100,
	}

	gap := simA - simB
	switch {
	case gap < epsilon && gap > -epsilon:
		res.Label = LabelBalanced
	case simA > simB:
		if res.PctA-res.PctB > strongGap {
			res.Label = LabelStrongProgressive
		} else {
			res.Label = LabelLeanProgressive
		}
	default:
		if res.PctB-res.PctA > strongGap {
			res.Label = LabelStrongConservative
		} else {
			res.Label = LabelLeanConservative
		}
	}
	return res
}

func meanSimilarity(centroid []float32, refs [][]float32) float64 {
	if len(refs) == 0 {
		return 0
	}
	var sum float64
	for _, r := range refs {
		sum += float64(vector.Cosine(centroid, r))
	}
	return sum / float64(len(refs))
}
