// Package analysis classifies LTI systems: Routh-Hurwitz stability
// tables over the characteristic polynomial and pole/zero extraction
// with per-root stability tags.
package analysis

import (
	"errors"
	"math"

	"github.com/san-kum/ctlab/internal/tfunc"
)

// SignEps is the tolerance under which a first-column entry counts as
// zero during classification.
const SignEps = 1e-10

// ErrInvalidDenominator indicates an empty or all-zero characteristic
// polynomial.
var ErrInvalidDenominator = errors.New("analysis: empty or zero denominator")

// Classification is the stability verdict of a Routh-Hurwitz analysis.
type Classification int

const (
	Stable Classification = iota
	MarginallyStable
	Unstable
)

func (c Classification) String() string {
	switch c {
	case Stable:
		return "stable"
	case MarginallyStable:
		return "marginally stable"
	default:
		return "unstable"
	}
}

// Reasons attached to the short-circuit paths of the analysis.
const (
	ReasonMixedSigns    = "mixed-sign coefficients"
	ReasonSingularPivot = "singular pivot"
)

// StabilityResult holds the constructed table rows (highest power
// first), the polynomial degree, the verdict, and the number of
// first-column sign changes, which estimates the right-half-plane
// pole count when unstable. Results are created fresh per call and
// never mutated.
type StabilityResult struct {
	Rows           [][]float64
	Degree         int
	Classification Classification
	SignChanges    int
	Reason         string
}

// AnalyzeStability runs the Routh-Hurwitz criterion over denominator
// coefficients in descending power order.
//
// The zero-pivot path is a deliberate simplification: a zero first
// element in a row that still has nonzero entries reports "singular
// pivot" and classifies unstable instead of applying the classical
// epsilon substitution. An all-zero row ends construction instead;
// its zero first column then surfaces as a near-zero entry during
// classification, so integrators and undamped oscillators land on
// marginally stable rather than the auxiliary-polynomial treatment.
func AnalyzeStability(den []float64) (StabilityResult, error) {
	coeffs := tfunc.Poly(den).TrimLeading()
	n := len(coeffs)
	if n == 0 {
		return StabilityResult{}, ErrInvalidDenominator
	}
	degree := n - 1

	rows := seedRows(coeffs)

	// Necessary condition: every nonzero coefficient shares one sign.
	// Zeros pass through; they surface later as near-zero first-column
	// entries.
	var pos, neg bool
	for _, c := range coeffs {
		if c > 0 {
			pos = true
		} else if c < 0 {
			neg = true
		}
	}
	if pos && neg {
		changes, _ := scanFirstColumn(rows)
		return StabilityResult{
			Rows:           rows,
			Degree:         degree,
			Classification: Unstable,
			SignChanges:    changes,
			Reason:         ReasonMixedSigns,
		}, nil
	}

	for i := 2; i < n; i++ {
		prev := rows[i-1]
		prev2 := rows[i-2]
		if len(prev2) < 2 {
			break
		}
		if isZeroRow(prev) {
			break
		}
		pivot := prev[0]
		if pivot == 0 {
			changes, _ := scanFirstColumn(rows)
			return StabilityResult{
				Rows:           rows,
				Degree:         degree,
				Classification: Unstable,
				SignChanges:    changes,
				Reason:         ReasonSingularPivot,
			}, nil
		}
		row := make([]float64, len(prev2)-1)
		for j := range row {
			row[j] = (pivot*at(prev2, j+1) - prev2[0]*at(prev, j+1)) / pivot
		}
		row = trimTrailing(row)
		rows = append(rows, row)
	}

	changes, nearZero := scanFirstColumn(rows)
	res := StabilityResult{Rows: rows, Degree: degree, SignChanges: changes}
	switch {
	case changes > 0:
		res.Classification = Unstable
	case nearZero:
		res.Classification = MarginallyStable
	default:
		res.Classification = Stable
	}
	return res, nil
}

// seedRows splits the coefficients into the even- and odd-index rows.
// Genuine zero coefficients stay in place so a pole at the origin
// surfaces as a near-zero first-column entry; the odd row carries no
// width padding because at reads zero past a row's end anyway.
func seedRows(coeffs []float64) [][]float64 {
	var even, odd []float64
	for i, c := range coeffs {
		if i%2 == 0 {
			even = append(even, c)
		} else {
			odd = append(odd, c)
		}
	}
	rows := [][]float64{even}
	if len(coeffs) > 1 {
		rows = append(rows, odd)
	}
	return rows
}

func at(row []float64, j int) float64 {
	if j < len(row) {
		return row[j]
	}
	return 0
}

func trimTrailing(row []float64) []float64 {
	for len(row) > 1 && row[len(row)-1] == 0 {
		row = row[:len(row)-1]
	}
	return row
}

func isZeroRow(row []float64) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}
	return true
}

// scanFirstColumn counts sign changes between consecutive nonzero
// first-column entries and reports whether any entry is near zero.
func scanFirstColumn(rows [][]float64) (changes int, nearZero bool) {
	var last float64
	haveLast := false
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		v := row[0]
		if math.Abs(v) < SignEps {
			nearZero = true
			continue
		}
		if haveLast && last*v < 0 {
			changes++
		}
		last = v
		haveLast = true
	}
	return changes, nearZero
}
