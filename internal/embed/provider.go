// Package embed turns headline text into fixed-dimension vectors. The
// pipeline treats a provider as a pure function: the same text must map to
// the same vector regardless of batch composition.
package embed

import "context"

// Provider is the remote embedding boundary.
type Provider interface {
	// EmbedBatch returns one vector per input text, in input order. All
	// vectors share the provider's dimensionality.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions reports the vector dimensionality, 0 if not yet known.
	Dimensions() int
}
