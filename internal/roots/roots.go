// Package roots finds the complex roots of real polynomials via the
// eigenvalues of the companion matrix.
package roots

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/ctlab/internal/tfunc"
)

// ErrNumericOverflow indicates non-finite coefficients or a failed
// eigenvalue factorization.
var ErrNumericOverflow = errors.New("roots: non-finite value in root computation")

// Roots returns all roots of the polynomial with the given coefficients
// in descending power order. Constant polynomials have no roots. The
// result is sorted by real part, then imaginary part, so repeated calls
// on the same input are deterministic.
func Roots(coeffs []float64) ([]complex128, error) {
	p := tfunc.Poly(coeffs).TrimLeading()
	n := p.Degree()
	if n <= 0 {
		return nil, nil
	}
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: coefficient %v", ErrNumericOverflow, c)
		}
	}

	// Normalize to monic form.
	monic := make([]float64, n+1)
	for i := range p {
		monic[i] = p[i] / p[0]
	}

	if n == 1 {
		return []complex128{complex(-monic[1], 0)}, nil
	}

	// Companion matrix: first row carries the negated coefficients,
	// the subdiagonal is ones.
	c := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		c.Set(0, j, -monic[j+1])
	}
	for i := 1; i < n; i++ {
		c.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return nil, fmt.Errorf("%w: eigenvalue factorization failed", ErrNumericOverflow)
	}
	vals := eig.Values(nil)
	for _, v := range vals {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return nil, fmt.Errorf("%w: eigenvalue %v", ErrNumericOverflow, v)
		}
	}

	sort.Slice(vals, func(i, j int) bool {
		if real(vals[i]) != real(vals[j]) {
			return real(vals[i]) < real(vals[j])
		}
		return imag(vals[i]) < imag(vals[j])
	})
	return vals, nil
}
