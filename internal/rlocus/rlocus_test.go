package rlocus

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/san-kum/ctlab/internal/tfunc"
)

func TestComputeBranchesStartAtOpenLoopPoles(t *testing.T) {
	// 1/((s+1)(s+2)): poles at -1 and -2.
	g, _ := tfunc.New([]float64{1}, []float64{1, 3, 2})
	loc, err := Compute(g, GainRange{Min: 0, Max: 10, Points: 50})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if len(loc.Branches) != 2 {
		t.Fatalf("branches = %d, want 2", len(loc.Branches))
	}
	if loc.Gains[0] != 0 {
		t.Fatalf("sweep starts at gain %v, want 0", loc.Gains[0])
	}
	starts := []complex128{loc.Branches[0].Points[0], loc.Branches[1].Points[0]}
	for _, want := range []complex128{-1, -2} {
		found := false
		for _, s := range starts {
			if cmplx.Abs(s-want) < 1e-6 {
				found = true
			}
		}
		if !found {
			t.Errorf("no branch starts at %v; starts = %v", want, starts)
		}
	}
}

func TestComputeBranchContinuity(t *testing.T) {
	g, _ := tfunc.New([]float64{1}, []float64{1, 3, 2})
	loc, err := Compute(g, GainRange{Min: 0, Max: 20, Points: 200})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	for b, br := range loc.Branches {
		for i := 1; i < len(br.Points); i++ {
			jump := cmplx.Abs(br.Points[i] - br.Points[i-1])
			if jump > 1.0 {
				t.Fatalf("branch %d jumps %v at step %d", b, jump, i)
			}
		}
	}
}

func TestComputeSecondOrderBreakaway(t *testing.T) {
	// den + K = s^2 + 3s + 2 + K: real roots for small K, a complex
	// pair once K exceeds 1/4 past the breakaway.
	g, _ := tfunc.New([]float64{1}, []float64{1, 3, 2})
	loc, err := Compute(g, GainRange{Min: 0, Max: 10, Points: 100})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	last := len(loc.Gains) - 1
	for b, br := range loc.Branches {
		p := br.Points[last]
		if math.Abs(imag(p)) < 1e-6 {
			t.Errorf("branch %d still real at K=%v: %v", b, loc.Gains[last], p)
		}
		if math.Abs(real(p)+1.5) > 1e-6 {
			t.Errorf("branch %d real part = %v, want -1.5", b, real(p))
		}
	}
}

func TestComputeDefaults(t *testing.T) {
	g, _ := tfunc.New([]float64{1}, []float64{1, 1})
	loc, err := Compute(g, GainRange{})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if len(loc.Gains) != DefaultGainRange.Points {
		t.Errorf("gain samples = %d, want %d", len(loc.Gains), DefaultGainRange.Points)
	}
	if got := loc.Gains[len(loc.Gains)-1]; math.Abs(got-DefaultGainRange.Max) > 1e-9 {
		t.Errorf("sweep ends at %v, want %v", got, DefaultGainRange.Max)
	}
}

func TestComputeErrors(t *testing.T) {
	g, _ := tfunc.New([]float64{1}, []float64{1, 1})
	if _, err := Compute(g, GainRange{Min: 5, Max: 1}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	gain, _ := tfunc.New([]float64{2}, []float64{1})
	if _, err := Compute(gain, GainRange{}); !errors.Is(err, ErrNoPoles) {
		t.Errorf("expected ErrNoPoles, got %v", err)
	}
}
