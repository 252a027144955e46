// Package response simulates the time-domain output of LTI transfer
// functions for standard test inputs over a fixed sample grid.
package response

import (
	"errors"

	"github.com/san-kum/ctlab/internal/tfunc"
)

// ErrImproperSystem indicates a numerator degree above the denominator
// degree; such systems have no state-space realization.
var ErrImproperSystem = errors.New("response: improper system (numerator degree exceeds denominator degree)")

// StateSpace is a single-input single-output realization
//
//	xdot = A x + B u
//	y    = C x + D u
type StateSpace struct {
	A [][]float64
	B []float64
	C []float64
	D float64
}

// Order returns the state dimension.
func (ss StateSpace) Order() int { return len(ss.B) }

// Realize converts a proper transfer function to controllable canonical
// form. A zero-order (pure gain) system realizes as D only.
func Realize(g tfunc.TransferFunction) (StateSpace, error) {
	den := g.Den()
	num := g.Num()
	n := den.Degree()
	if num.Degree() > n {
		return StateSpace{}, ErrImproperSystem
	}
	if n == 0 {
		return StateSpace{D: num[0] / den[0]}, nil
	}

	// Monic denominator: s^n + a1 s^(n-1) + ... + an.
	a := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = den[i+1] / den[0]
	}
	// Numerator padded to the same length: b0 s^n + ... + bn.
	b := make([]float64, n+1)
	offset := n + 1 - len(num)
	for i, c := range num {
		b[offset+i] = c / den[0]
	}

	ss := StateSpace{
		A: make([][]float64, n),
		B: make([]float64, n),
		C: make([]float64, n),
		D: b[0],
	}
	for i := range ss.A {
		ss.A[i] = make([]float64, n)
	}
	for j := 0; j < n; j++ {
		ss.A[0][j] = -a[j]
	}
	for i := 1; i < n; i++ {
		ss.A[i][i-1] = 1
	}
	ss.B[0] = 1
	for i := 0; i < n; i++ {
		ss.C[i] = b[i+1] - a[i]*b[0]
	}
	return ss, nil
}

// Derivative evaluates xdot = A x + B u into dst.
func (ss StateSpace) Derivative(dst, x []float64, u float64) {
	for i := range dst {
		acc := ss.B[i] * u
		for j, aij := range ss.A[i] {
			acc += aij * x[j]
		}
		dst[i] = acc
	}
}

// Output evaluates y = C x + D u.
func (ss StateSpace) Output(x []float64, u float64) float64 {
	y := ss.D * u
	for i, ci := range ss.C {
		y += ci * x[i]
	}
	return y
}
