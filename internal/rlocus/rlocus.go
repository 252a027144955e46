// Package rlocus traces closed-loop pole trajectories as the loop gain
// sweeps over a range.
package rlocus

import (
	"errors"
	"math/cmplx"

	"github.com/san-kum/ctlab/internal/roots"
	"github.com/san-kum/ctlab/internal/tfunc"
)

// ErrInvalidRange indicates a gain range with Max below Min.
var ErrInvalidRange = errors.New("rlocus: invalid gain range")

// ErrNoPoles indicates a constant denominator; there are no branches
// to trace.
var ErrNoPoles = errors.New("rlocus: system has no poles")

// GainRange is the swept gain interval and its sample count.
type GainRange struct {
	Min    float64
	Max    float64
	Points int
}

// Default sweep: gains 0 through 100 over 400 samples.
var DefaultGainRange = GainRange{Min: 0, Max: 100, Points: 400}

func (r GainRange) withDefaults() GainRange {
	if r.Max <= r.Min {
		r.Min, r.Max = DefaultGainRange.Min, DefaultGainRange.Max
	}
	if r.Points < 2 {
		r.Points = DefaultGainRange.Points
	}
	return r
}

// Branch is one continuous pole trajectory. Points[i] is the branch
// position at Gains[i] of the owning Locus.
type Branch struct {
	Points []complex128
}

// Locus holds the swept gains and one branch per open-loop pole.
// Branches stay continuous across gain steps: each new root set is
// matched to the previous branch tips by nearest neighbor.
type Locus struct {
	Gains    []float64
	Branches []Branch
}

// Compute sweeps the gain over the range and solves the characteristic
// equation den(s) + K num(s) = 0 at each sample. Gain samples whose
// root count differs from the branch count are skipped; this happens
// when leading terms cancel at a particular K.
func Compute(g tfunc.TransferFunction, rng GainRange) (Locus, error) {
	if rng.Max < rng.Min {
		return Locus{}, ErrInvalidRange
	}
	rng = rng.withDefaults()
	num := g.Num()
	den := g.Den()

	// Branches originate at the open-loop poles.
	origin, err := roots.Roots(den)
	if err != nil {
		return Locus{}, err
	}
	n := len(origin)
	if n == 0 {
		return Locus{}, ErrNoPoles
	}

	loc := Locus{Branches: make([]Branch, n)}
	tips := make([]complex128, n)
	copy(tips, origin)

	// Solve the characteristic equation at every gain in parallel; the
	// solves are independent, only branch matching is order-dependent.
	gains := make([]float64, rng.Points)
	rootSets := make([][]complex128, rng.Points)
	errs := make([]error, rng.Points)
	dk := (rng.Max - rng.Min) / float64(rng.Points-1)
	parallelFor(rng.Points, 32, func(start, end int) {
		for i := start; i < end; i++ {
			k := rng.Min + float64(i)*dk
			gains[i] = k
			char := den.Add(num.Scale(k))
			rootSets[i], errs[i] = roots.Roots(char)
		}
	})
	for _, err := range errs {
		if err != nil {
			return Locus{}, err
		}
	}

	for i := 0; i < rng.Points; i++ {
		if len(rootSets[i]) != n {
			continue
		}
		matched := matchBranches(tips, rootSets[i])
		loc.Gains = append(loc.Gains, gains[i])
		for b := range loc.Branches {
			loc.Branches[b].Points = append(loc.Branches[b].Points, matched[b])
			tips[b] = matched[b]
		}
	}
	return loc, nil
}

// matchBranches assigns each root to the nearest unclaimed branch tip,
// greedily in order of overall closeness.
func matchBranches(tips, rts []complex128) []complex128 {
	n := len(tips)
	out := make([]complex128, n)
	usedTip := make([]bool, n)
	usedRoot := make([]bool, n)
	for step := 0; step < n; step++ {
		best := -1.0
		bi, bj := 0, 0
		for i := range tips {
			if usedTip[i] {
				continue
			}
			for j := range rts {
				if usedRoot[j] {
					continue
				}
				d := cmplx.Abs(rts[j] - tips[i])
				if best < 0 || d < best {
					best, bi, bj = d, i, j
				}
			}
		}
		usedTip[bi] = true
		usedRoot[bj] = true
		out[bi] = rts[bj]
	}
	return out
}
