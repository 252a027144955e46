package tfunc

// Poly holds real polynomial coefficients in descending power order,
// so Poly{1, 2, 3} is s^2 + 2s + 3.
type Poly []float64

func (p Poly) Degree() int {
	return len(p) - 1
}

func (p Poly) Clone() Poly {
	c := make(Poly, len(p))
	copy(c, p)
	return c
}

// TrimLeading drops leading zero coefficients. Trailing zeros are
// significant (they encode roots at the origin) and are never removed.
func (p Poly) TrimLeading() Poly {
	i := 0
	for i < len(p) && p[i] == 0 {
		i++
	}
	return p[i:].Clone()
}

// Mul returns the product of two polynomials by coefficient convolution.
func (p Poly) Mul(q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return Poly{}
	}
	out := make(Poly, len(p)+len(q)-1)
	for i, a := range p {
		for j, b := range q {
			out[i+j] += a * b
		}
	}
	return out
}

// Add returns the sum of two polynomials. Operands are aligned at the
// constant term; the shorter one is padded with leading zeros.
func (p Poly) Add(q Poly) Poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Poly, n)
	for i, a := range p {
		out[n-len(p)+i] += a
	}
	for i, b := range q {
		out[n-len(q)+i] += b
	}
	return out
}

// Scale multiplies every coefficient by k.
func (p Poly) Scale(k float64) Poly {
	out := make(Poly, len(p))
	for i, a := range p {
		out[i] = k * a
	}
	return out
}

// Eval evaluates the polynomial at a complex point using Horner's rule.
func (p Poly) Eval(s complex128) complex128 {
	var acc complex128
	for _, a := range p {
		acc = acc*s + complex(a, 0)
	}
	return acc
}
