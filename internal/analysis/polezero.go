package analysis

import (
	"github.com/san-kum/ctlab/internal/roots"
	"github.com/san-kum/ctlab/internal/tfunc"
)

// Root is a pole or zero location. Stable is true iff the real part is
// strictly negative; a root on the imaginary axis is not stable.
type Root struct {
	S      complex128
	Stable bool
}

// PoleZeroSet holds the poles and zeros of one transfer function.
type PoleZeroSet struct {
	Poles []Root
	Zeros []Root
}

// ExtractPolesZeros computes the denominator and numerator roots of g.
func ExtractPolesZeros(g tfunc.TransferFunction) (PoleZeroSet, error) {
	poles, err := roots.Roots(g.Den())
	if err != nil {
		return PoleZeroSet{}, err
	}
	zeros, err := roots.Roots(g.Num())
	if err != nil {
		return PoleZeroSet{}, err
	}
	return PoleZeroSet{Poles: tag(poles), Zeros: tag(zeros)}, nil
}

func tag(rts []complex128) []Root {
	out := make([]Root, len(rts))
	for i, r := range rts {
		out[i] = Root{S: r, Stable: real(r) < 0}
	}
	return out
}
