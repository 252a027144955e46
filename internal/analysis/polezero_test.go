package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/ctlab/internal/tfunc"
)

func TestExtractPolesZerosFirstOrder(t *testing.T) {
	g, _ := tfunc.New([]float64{1}, []float64{1, 1})
	set, err := ExtractPolesZeros(g)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(set.Poles) != 1 {
		t.Fatalf("expected 1 pole, got %d", len(set.Poles))
	}
	p := set.Poles[0]
	if math.Abs(real(p.S)+1) > 1e-9 {
		t.Errorf("pole = %v, want -1", p.S)
	}
	if !p.Stable {
		t.Error("pole at -1 should be stable")
	}
	if len(set.Zeros) != 0 {
		t.Errorf("expected no zeros, got %d", len(set.Zeros))
	}
}

func TestExtractPolesZerosStabilityTags(t *testing.T) {
	// (s-1)(s+2) denominator: one unstable, one stable pole.
	g, _ := tfunc.New([]float64{1, 3}, []float64{1, 1, -2})
	set, err := ExtractPolesZeros(g)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(set.Poles) != 2 {
		t.Fatalf("expected 2 poles, got %d", len(set.Poles))
	}
	var stable, unstable int
	for _, p := range set.Poles {
		if p.Stable {
			stable++
		} else {
			unstable++
		}
	}
	if stable != 1 || unstable != 1 {
		t.Errorf("stable=%d unstable=%d, want 1 and 1", stable, unstable)
	}
	if len(set.Zeros) != 1 || !set.Zeros[0].Stable {
		t.Errorf("expected one stable zero at -3, got %v", set.Zeros)
	}
}

func TestExtractPolesZerosImaginaryAxisNotStable(t *testing.T) {
	g, _ := tfunc.New([]float64{1}, []float64{1, 0, 1})
	set, err := ExtractPolesZeros(g)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	for _, p := range set.Poles {
		if p.Stable {
			t.Errorf("pole %v on the imaginary axis tagged stable", p.S)
		}
	}
}
