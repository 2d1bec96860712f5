package embed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prismanews/prisma/internal/logger"
	"github.com/prismanews/prisma/internal/storage"
	"github.com/prismanews/prisma/internal/vector"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// fakeProvider records batch sizes and can be told to fail.
type fakeProvider struct {
	dims    int
	fail    bool
	batches [][]string
}

func (f *fakeProvider) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	f.batches = append(f.batches, texts)
	if f.fail {
		return nil, errors.New("provider down")
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v := make([]float32, f.dims)
		v[len(t)%f.dims] = 1
		out[i] = v
	}
	return out, nil
}

func (f *fakeProvider) Dimensions() int { return f.dims }

func TestEmbedTitles_OrderAndBatching(t *testing.T) {
	p := &fakeProvider{dims: 4}
	s := NewService(p, nil, 2)

	titles := []string{"uno", "dos y dos", "tres", "cuatro!", "cinco"}
	vecs := s.EmbedTitles(context.Background(), titles)

	if len(vecs) != len(titles) {
		t.Fatalf("got %d vectors for %d titles", len(vecs), len(titles))
	}
	for i, v := range vecs {
		if len(v) != 4 {
			t.Errorf("vector %d has %d dims", i, len(v))
		}
		if v[len(titles[i])%4] != 1 {
			t.Errorf("vector %d does not correspond to title %q", i, titles[i])
		}
	}
	if len(p.batches) != 3 {
		t.Errorf("5 titles at batch size 2 should take 3 calls, got %d", len(p.batches))
	}
}

func TestEmbedTitles_CacheSkipsProvider(t *testing.T) {
	cache := storage.NewVectorCache(filepath.Join(t.TempDir(), "v.json"), 72)
	p := &fakeProvider{dims: 4}
	s := NewService(p, cache, 8)

	titles := []string{"primera noticia", "segunda noticia"}
	first := s.EmbedTitles(context.Background(), titles)
	if len(p.batches) != 1 {
		t.Fatalf("cold cache should hit the provider once, got %d calls", len(p.batches))
	}

	second := s.EmbedTitles(context.Background(), titles)
	if len(p.batches) != 1 {
		t.Errorf("warm cache should not call the provider again, got %d calls", len(p.batches))
	}
	for i := range first {
		if vector.Cosine(first[i], second[i]) < 0.999 {
			t.Errorf("cached vector %d differs from original", i)
		}
	}
}

func TestEmbedTitles_FallbackOnProviderError(t *testing.T) {
	p := &fakeProvider{dims: 4, fail: true}
	s := NewService(p, nil, 8)

	titles := []string{"alpha beta", "gamma delta"}
	vecs := s.EmbedTitles(context.Background(), titles)

	for i, v := range vecs {
		if len(v) != 4 {
			t.Fatalf("fallback vector %d has %d dims, want provider dims", i, len(v))
		}
		var norm float32
		for _, x := range v {
			norm += x * x
		}
		if norm < 0.99 || norm > 1.01 {
			t.Errorf("fallback vector %d is not unit length: %f", i, norm)
		}
	}

	again := s.EmbedTitles(context.Background(), titles)
	for i := range vecs {
		if vector.Cosine(vecs[i], again[i]) < 0.999 {
			t.Errorf("fallback vectors must be deterministic per title, index %d", i)
		}
	}
	if vector.Cosine(vecs[0], vecs[1]) > 0.999 {
		t.Error("distinct titles should get distinct fallback vectors")
	}
}

func TestEmbedTitles_Empty(t *testing.T) {
	s := NewService(&fakeProvider{dims: 4}, nil, 8)
	if got := s.EmbedTitles(context.Background(), nil); len(got) != 0 {
		t.Errorf("no titles should yield no vectors, got %d", len(got))
	}
}

func TestFallbackVector_DefaultDims(t *testing.T) {
	v := FallbackVector("algo", 0)
	if len(v) != fallbackDims {
		t.Errorf("dims = %d, want %d", len(v), fallbackDims)
	}
}
