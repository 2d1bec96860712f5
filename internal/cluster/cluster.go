// Package cluster groups deduplicated headlines into topic clusters.
package cluster

import (
	"sort"

	"github.com/prismanews/prisma/internal/vector"
)

// Options are the grouping cutoffs. Threshold drives the primary greedy pass;
// MinGrouping drives the pairwise fallback when the primary pass degenerates.
type Options struct {
	Threshold   float32
	MinGrouping float32
}

// Engine owns the per-run cluster accumulator. One Engine per batch run;
// never shared across runs.
type Engine struct {
	opts Options
}

func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Cluster assigns each vector, in input order, to the existing cluster whose
// current-member centroid it is most similar to, opening a new singleton when
// the best score does not clear the threshold. The centroid is recomputed
// from the members present at comparison time, so cluster identity drifts as
// members are added; that drift is intended and must not be replaced with a
// fixed seed-vector comparison.
//
// When the pass produces no cluster with at least two members the result is
// discarded and a pairwise minimum-similarity grouping runs instead, so the
// output is never a single degenerate bucket. Clusters come back sorted by
// descending size, ties keeping discovery order.
func (e *Engine) Cluster(vecs [][]float32) [][]int {
	var groups [][]int

	for i := range vecs {
		best := -1
		var bestScore float32

		for gi, g := range groups {
			members := make([][]float32, len(g))
			for mi, idx := range g {
				members[mi] = vecs[idx]
			}
			score := vector.Cosine(vecs[i], vector.Mean(members))
			if score > bestScore {
				bestScore = score
				best = gi
			}
		}

		if best >= 0 && bestScore > e.opts.Threshold {
			groups[best] = append(groups[best], i)
		} else {
			groups = append(groups, []int{i})
		}
	}

	if degenerate(groups) {
		groups = e.pairwise(vecs)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return len(groups[a]) > len(groups[b])
	})
	return groups
}

// degenerate reports whether the greedy pass failed to find any real group.
func degenerate(groups [][]int) bool {
	for _, g := range groups {
		if len(g) >= 2 {
			return false
		}
	}
	return true
}

// pairwise is the fallback grouping: each unvisited item claims every later
// unvisited item whose direct similarity clears the minimum cutoff.
func (e *Engine) pairwise(vecs [][]float32) [][]int {
	visited := make([]bool, len(vecs))
	var groups [][]int

	for i := range vecs {
		if visited[i] {
			continue
		}
		g := []int{i}
		visited[i] = true
		for j := i + 1; j < len(vecs); j++ {
			if visited[j] {
				continue
			}
			if vector.Cosine(vecs[i], vecs[j]) > e.opts.MinGrouping {
				g = append(g, j)
				visited[j] = true
			}
		}
		groups = append(groups, g)
	}
	return groups
}
