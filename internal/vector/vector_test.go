package vector

import (
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestCosine_Orthogonal(t *testing.T) {
	if got := Cosine([]float32{1, 0}, []float32{0, 1}); !almostEqual(got, 0) {
		t.Errorf("Cosine orthogonal = %v, want 0", got)
	}
}

func TestCosine_Parallel(t *testing.T) {
	if got := Cosine([]float32{1, 2}, []float32{2, 4}); !almostEqual(got, 1) {
		t.Errorf("Cosine parallel = %v, want 1", got)
	}
}

func TestCosine_Opposite(t *testing.T) {
	if got := Cosine([]float32{1, 0}, []float32{-1, 0}); !almostEqual(got, -1) {
		t.Errorf("Cosine opposite = %v, want -1", got)
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	if got := Cosine([]float32{0, 0}, []float32{1, 1}); got != 0 {
		t.Errorf("Cosine with zero vector = %v, want 0", got)
	}
}

func TestMean(t *testing.T) {
	got := Mean([][]float32{{1, 0}, {0, 1}, {2, 2}})
	want := []float32{1, 1}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("Mean[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMean_Empty(t *testing.T) {
	if got := Mean(nil); got != nil {
		t.Errorf("Mean(nil) = %v, want nil", got)
	}
}

func TestMean_SingleVector(t *testing.T) {
	got := Mean([][]float32{{0.5, -0.5}})
	if !almostEqual(got[0], 0.5) || !almostEqual(got[1], -0.5) {
		t.Errorf("Mean single = %v", got)
	}
}
