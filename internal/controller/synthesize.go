package controller

import (
	"errors"
	"fmt"

	"github.com/san-kum/ctlab/internal/tfunc"
)

// ErrMissingParameter indicates a spec lacking a field its kind needs.
var ErrMissingParameter = errors.New("controller: missing required parameter")

func missing(field string, kind Kind) error {
	return fmt.Errorf("%w: %s for %s controller", ErrMissingParameter, field, kind)
}

// Synthesize converts a Spec into the compensator transfer function.
//
//	P:    Kp / 1
//	PI:   (Kp s + Ki) / s
//	PD:   (Kd s + Kp) / 1
//	PID:  (Kd s^2 + Kp s + Ki) / s
//	Lead, Lag:  Kp * num / den
//	LeadLag:    Kp * (lead num/den) * (lag num/den)
func Synthesize(spec Spec) (tfunc.TransferFunction, error) {
	if spec.Kp == nil {
		return tfunc.TransferFunction{}, missing("kp", spec.Kind)
	}
	kp := *spec.Kp

	switch spec.Kind {
	case P:
		return tfunc.New([]float64{kp}, []float64{1})

	case PI:
		if spec.Ki == nil {
			return tfunc.TransferFunction{}, missing("ki", spec.Kind)
		}
		return tfunc.New([]float64{kp, *spec.Ki}, []float64{1, 0})

	case PD:
		if spec.Kd == nil {
			return tfunc.TransferFunction{}, missing("kd", spec.Kind)
		}
		return tfunc.New([]float64{*spec.Kd, kp}, []float64{1})

	case PID:
		if spec.Ki == nil {
			return tfunc.TransferFunction{}, missing("ki", spec.Kind)
		}
		if spec.Kd == nil {
			return tfunc.TransferFunction{}, missing("kd", spec.Kind)
		}
		return tfunc.New([]float64{*spec.Kd, kp, *spec.Ki}, []float64{1, 0})

	case Lead, Lag:
		if len(spec.Num) == 0 {
			return tfunc.TransferFunction{}, missing("numerator", spec.Kind)
		}
		if len(spec.Den) == 0 {
			return tfunc.TransferFunction{}, missing("denominator", spec.Kind)
		}
		return tfunc.New(tfunc.Poly(spec.Num).Scale(kp), spec.Den)

	case LeadLag:
		if len(spec.Num) == 0 || len(spec.Den) == 0 {
			return tfunc.TransferFunction{}, missing("lead term", spec.Kind)
		}
		if len(spec.LagNum) == 0 || len(spec.LagDen) == 0 {
			return tfunc.TransferFunction{}, missing("lag term", spec.Kind)
		}
		lead, err := tfunc.New(spec.Num, spec.Den)
		if err != nil {
			return tfunc.TransferFunction{}, err
		}
		lag, err := tfunc.New(spec.LagNum, spec.LagDen)
		if err != nil {
			return tfunc.TransferFunction{}, err
		}
		prod, err := tfunc.Series(lead, lag)
		if err != nil {
			return tfunc.TransferFunction{}, err
		}
		// The scalar gain applies once to the overall product, not to
		// each factor.
		return tfunc.New(prod.Num().Scale(kp), prod.Den())

	default:
		return tfunc.TransferFunction{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(spec.Kind))
	}
}
