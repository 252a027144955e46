// Package tfunc implements transfer-function representation and algebra
// for continuous-time LTI systems: coefficient-vector polynomials,
// series composition, and negative-feedback interconnection.
package tfunc

// TransferFunction is a ratio of two polynomials in the Laplace
// variable s. Values are immutable once built; algebra operations
// return new instances.
type TransferFunction struct {
	num Poly
	den Poly
}

// New builds a transfer function from numerator and denominator
// coefficients in descending power order. Leading zero coefficients are
// trimmed; a denominator that trims to nothing is a degenerate system.
func New(num, den []float64) (TransferFunction, error) {
	n := Poly(num).TrimLeading()
	d := Poly(den).TrimLeading()
	if len(d) == 0 {
		return TransferFunction{}, ErrDegenerateSystem
	}
	if len(n) == 0 {
		n = Poly{0}
	}
	return TransferFunction{num: n, den: d}, nil
}

// Unity is the identity transfer function 1/1.
func Unity() TransferFunction {
	return TransferFunction{num: Poly{1}, den: Poly{1}}
}

// Num returns a copy of the numerator coefficients.
func (g TransferFunction) Num() Poly { return g.num.Clone() }

// Den returns a copy of the denominator coefficients.
func (g TransferFunction) Den() Poly { return g.den.Clone() }

// Series returns the cascade a*b. The result degree is the sum of the
// operand degrees.
func Series(a, b TransferFunction) (TransferFunction, error) {
	return New(a.num.Mul(b.num), a.den.Mul(b.den))
}

// Feedback closes a negative feedback loop around g with h in the
// feedback path:
//
//	num = g.num * h.den
//	den = g.den * h.den + g.num * h.num
func Feedback(g, h TransferFunction) (TransferFunction, error) {
	num := g.num.Mul(h.den)
	den := g.den.Mul(h.den).Add(g.num.Mul(h.num))
	return New(num, den)
}

// FeedbackUnity closes a unity negative feedback loop around g.
func FeedbackUnity(g TransferFunction) (TransferFunction, error) {
	return Feedback(g, Unity())
}

// Eval evaluates G(s) at a complex point.
func (g TransferFunction) Eval(s complex128) complex128 {
	return g.num.Eval(s) / g.den.Eval(s)
}

// DCGain returns G(0), the steady-state gain. Systems with a pole at
// the origin return +/-Inf.
func (g TransferFunction) DCGain() float64 {
	return real(g.Eval(0))
}
