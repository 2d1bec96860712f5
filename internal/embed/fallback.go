package embed

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand"
	"strings"
)

// fallbackDims is used when vectors must be invented before any provider
// dimensionality is known.
const fallbackDims = 256

// FallbackVector returns a deterministic pseudo-random unit vector seeded by
// the text content. It carries no semantics: downstream clusters and bias
// labels built on it are degenerate, which the pipeline accepts rather than
// aborting the batch when the embedding provider is down. The same text
// always yields the same vector.
func FallbackVector(text string, dims int) []float32 {
	if dims <= 0 {
		dims = fallbackDims
	}

	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	sum := sha256.Sum256([]byte(normalized))
	seed := int64(binary.BigEndian.Uint64(sum[:8]))
	rng := rand.New(rand.NewSource(seed))

	v := make([]float32, dims)
	var norm float64
	for i := range v {
		x := rng.NormFloat64()
		v[i] = float32(x)
		norm += x * x
	}
	if norm == 0 {
		v[0] = 1
		return v
	}
	inv := float32(1 / math.Sqrt(norm))
	for i := range v {
		v[i] *= inv
	}
	return v
}
