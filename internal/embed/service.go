package embed

import (
	"context"

	"github.com/prismanews/prisma/internal/logger"
	"github.com/prismanews/prisma/internal/metrics"
	"github.com/prismanews/prisma/internal/storage"
)

// Service wraps a Provider with the persistent vector cache, request
// batching and the failure fallback. EmbedTitles never returns an error: a
// failing provider degrades the run instead of aborting it.
type Service struct {
	provider  Provider
	cache     *storage.VectorCache
	batchSize int
}

// NewService builds the embedding service. cache may be nil to disable
// persistence; batchSize <= 0 falls back to a sane default.
func NewService(provider Provider, cache *storage.VectorCache, batchSize int) *Service {
	if batchSize <= 0 {
		batchSize = 32
	}
	return &Service{provider: provider, cache: cache, batchSize: batchSize}
}

// EmbedTitles returns one vector per title, in order. Cached titles are
// served from disk; the rest go to the provider in batches. Any batch the
// provider cannot embed is replaced with deterministic hash-seeded vectors,
// which keeps the pipeline running but is logged loudly because the
// resulting groups carry no semantics.
func (s *Service) EmbedTitles(ctx context.Context, titles []string) [][]float32 {
	result := make([][]float32, len(titles))

	var missing []int
	for i, t := range titles {
		if s.cache != nil {
			if v, ok := s.cache.Get(s.cache.Key(t)); ok {
				result[i] = v
				metrics.Global.IncrementEmbedCacheHits()
				continue
			}
		}
		metrics.Global.IncrementEmbedCacheMisses()
		missing = append(missing, i)
	}

	for start := 0; start < len(missing); start += s.batchSize {
		end := start + s.batchSize
		if end > len(missing) {
			end = len(missing)
		}
		batchIdx := missing[start:end]

		texts := make([]string, len(batchIdx))
		for j, idx := range batchIdx {
			texts[j] = titles[idx]
		}

		vecs, err := s.provider.EmbedBatch(ctx, texts)
		if err != nil {
			logger.Warn("embedding batch failed, using fallback vectors", "error", err, "batch_size", len(texts))
			metrics.Global.IncrementEmbedFallbackRuns()
			dims := s.knownDims(result)
			for j, idx := range batchIdx {
				result[idx] = FallbackVector(texts[j], dims)
			}
			continue
		}

		for j, idx := range batchIdx {
			result[idx] = vecs[j]
			if s.cache != nil {
				s.cache.Put(s.cache.Key(texts[j]), vecs[j])
			}
		}
	}

	return result
}

// knownDims picks a dimensionality for fallback vectors that matches any
// vectors already present, so mixed results stay comparable.
func (s *Service) knownDims(partial [][]float32) int {
	for _, v := range partial {
		if len(v) > 0 {
			return len(v)
		}
	}
	if d := s.provider.Dimensions(); d > 0 {
		return d
	}
	return fallbackDims
}
