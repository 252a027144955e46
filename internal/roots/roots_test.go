package roots

import (
	"errors"
	"math"
	"testing"
)

func TestRootsLinear(t *testing.T) {
	rts, err := Roots([]float64{1, 1}) // s + 1
	if err != nil {
		t.Fatalf("roots failed: %v", err)
	}
	if len(rts) != 1 {
		t.Fatalf("expected 1 root, got %d", len(rts))
	}
	if math.Abs(real(rts[0])+1) > 1e-9 || math.Abs(imag(rts[0])) > 1e-9 {
		t.Errorf("root = %v, want -1", rts[0])
	}
}

func TestRootsQuadratic(t *testing.T) {
	// (s+1)(s+2) = s^2 + 3s + 2
	rts, err := Roots([]float64{1, 3, 2})
	if err != nil {
		t.Fatalf("roots failed: %v", err)
	}
	if len(rts) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(rts))
	}
	// Sorted by real part: -2 before -1.
	if math.Abs(real(rts[0])+2) > 1e-9 || math.Abs(real(rts[1])+1) > 1e-9 {
		t.Errorf("roots = %v, want [-2 -1]", rts)
	}
}

func TestRootsComplexPair(t *testing.T) {
	// s^2 + 1 has roots at +/-i.
	rts, err := Roots([]float64{1, 0, 1})
	if err != nil {
		t.Fatalf("roots failed: %v", err)
	}
	if len(rts) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(rts))
	}
	for _, r := range rts {
		if math.Abs(real(r)) > 1e-9 || math.Abs(math.Abs(imag(r))-1) > 1e-9 {
			t.Errorf("root = %v, want +/-i", r)
		}
	}
}

func TestRootsIntegrator(t *testing.T) {
	// s^2 + s = s(s+1): trailing zeros are roots at the origin.
	rts, err := Roots([]float64{1, 1, 0})
	if err != nil {
		t.Fatalf("roots failed: %v", err)
	}
	if len(rts) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(rts))
	}
	foundOrigin := false
	for _, r := range rts {
		if math.Abs(real(r)) < 1e-9 && math.Abs(imag(r)) < 1e-9 {
			foundOrigin = true
		}
	}
	if !foundOrigin {
		t.Errorf("expected a root at the origin, got %v", rts)
	}
}

func TestRootsConstant(t *testing.T) {
	rts, err := Roots([]float64{5})
	if err != nil {
		t.Fatalf("roots failed: %v", err)
	}
	if len(rts) != 0 {
		t.Errorf("constant polynomial has no roots, got %v", rts)
	}
}

func TestRootsNonFinite(t *testing.T) {
	if _, err := Roots([]float64{1, math.NaN(), 1}); !errors.Is(err, ErrNumericOverflow) {
		t.Errorf("expected ErrNumericOverflow, got %v", err)
	}
}
