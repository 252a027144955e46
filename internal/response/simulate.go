package response

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/ctlab/internal/tfunc"
)

// ErrNumericOverflow indicates a non-finite value during integration.
var ErrNumericOverflow = errors.New("response: simulation produced non-finite values")

// ErrUnknownInput indicates an unrecognized input kind name.
var ErrUnknownInput = errors.New("response: unknown input kind")

// InputKind selects the test signal driving the simulation.
type InputKind int

const (
	Step InputKind = iota
	Ramp
	Parabola
)

var inputNames = map[InputKind]string{
	Step:     "step",
	Ramp:     "ramp",
	Parabola: "parabola",
}

func (k InputKind) String() string {
	if s, ok := inputNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseInputKind maps a name such as "step" to its InputKind.
func ParseInputKind(s string) (InputKind, error) {
	for k, name := range inputNames {
		if name == strings.ToLower(strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInput, s)
}

// signal returns u(t) for the kind.
func (k InputKind) signal(t float64) float64 {
	switch k {
	case Ramp:
		return t
	case Parabola:
		return t * t / 2
	default:
		return 1
	}
}

// Options controls the simulation grid.
type Options struct {
	Horizon float64
	Samples int
}

// Default grid: ten time units sampled at a thousand points.
const (
	DefaultHorizon = 10.0
	DefaultSamples = 1000
)

func (o Options) withDefaults() Options {
	if o.Horizon <= 0 {
		o.Horizon = DefaultHorizon
	}
	if o.Samples < 2 {
		o.Samples = DefaultSamples
	}
	return o
}

// SimulationResult holds sampled times and outputs. Reference carries
// the input signal itself for ramp and parabola runs so tracking error
// can be read off directly; it is nil for step runs.
type SimulationResult struct {
	Input     InputKind
	Times     []float64
	Outputs   []float64
	Reference []float64
}

// Simulate integrates the transfer function's response to the given
// input over a uniform grid using fixed-step RK4 from zero initial
// state.
func Simulate(g tfunc.TransferFunction, kind InputKind, opts Options) (SimulationResult, error) {
	ss, err := Realize(g)
	if err != nil {
		return SimulationResult{}, err
	}
	opts = opts.withDefaults()
	dt := opts.Horizon / float64(opts.Samples-1)

	res := SimulationResult{
		Input:   kind,
		Times:   make([]float64, opts.Samples),
		Outputs: make([]float64, opts.Samples),
	}
	if kind != Step {
		res.Reference = make([]float64, opts.Samples)
	}

	n := ss.Order()
	x := make([]float64, n)
	k1 := make([]float64, n)
	k2 := make([]float64, n)
	k3 := make([]float64, n)
	k4 := make([]float64, n)
	tmp := make([]float64, n)

	for i := 0; i < opts.Samples; i++ {
		t := float64(i) * dt
		u := kind.signal(t)
		y := ss.Output(x, u)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return SimulationResult{}, fmt.Errorf("%w: output at t=%.4f", ErrNumericOverflow, t)
		}
		res.Times[i] = t
		res.Outputs[i] = y
		if res.Reference != nil {
			res.Reference[i] = u
		}
		if i == opts.Samples-1 {
			break
		}

		// Classic RK4 with the input evaluated at t, t+dt/2, t+dt.
		uMid := kind.signal(t + dt/2)
		uEnd := kind.signal(t + dt)
		ss.Derivative(k1, x, u)
		step(tmp, x, k1, dt/2)
		ss.Derivative(k2, tmp, uMid)
		step(tmp, x, k2, dt/2)
		ss.Derivative(k3, tmp, uMid)
		step(tmp, x, k3, dt)
		ss.Derivative(k4, tmp, uEnd)
		for j := range x {
			x[j] += dt / 6 * (k1[j] + 2*k2[j] + 2*k3[j] + k4[j])
		}
	}
	return res, nil
}

func step(dst, x, k []float64, h float64) {
	for i := range dst {
		dst[i] = x[i] + h*k[i]
	}
}
