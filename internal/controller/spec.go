// Package controller maps compensator specifications onto transfer
// functions: the PID family plus lead/lag phase compensators.
package controller

import (
	"errors"
	"fmt"
)

// Kind identifies a compensator structure.
type Kind int

const (
	P Kind = iota
	PI
	PD
	PID
	Lead
	Lag
	LeadLag
)

var kindNames = map[Kind]string{
	P:       "p",
	PI:      "pi",
	PD:      "pd",
	PID:     "pid",
	Lead:    "lead",
	Lag:     "lag",
	LeadLag: "leadlag",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ErrUnknownKind indicates an unrecognized compensator name.
var ErrUnknownKind = errors.New("controller: unknown controller kind")

// ParseKind resolves a controller name to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Spec describes one compensator. Each Kind requires only the fields it
// uses; Synthesize rejects a spec whose active kind is missing any of
// its required fields. Gains are pointers so an absent value is
// distinguishable from zero.
type Spec struct {
	Kind Kind
	Kp   *float64
	Ki   *float64
	Kd   *float64

	// Num/Den hold the rational term for Lead and Lag, and the lead
	// part of a LeadLag.
	Num []float64
	Den []float64

	// LagNum/LagDen hold the lag part of a LeadLag.
	LagNum []float64
	LagDen []float64
}

func gain(v float64) *float64 { return &v }

// NewP builds a proportional spec.
func NewP(kp float64) Spec {
	return Spec{Kind: P, Kp: gain(kp)}
}

// NewPI builds a proportional-integral spec.
func NewPI(kp, ki float64) Spec {
	return Spec{Kind: PI, Kp: gain(kp), Ki: gain(ki)}
}

// NewPD builds a proportional-derivative spec.
func NewPD(kp, kd float64) Spec {
	return Spec{Kind: PD, Kp: gain(kp), Kd: gain(kd)}
}

// NewPID builds a full PID spec.
func NewPID(kp, ki, kd float64) Spec {
	return Spec{Kind: PID, Kp: gain(kp), Ki: gain(ki), Kd: gain(kd)}
}

// NewLead builds a lead compensator spec from its rational term.
func NewLead(kp float64, num, den []float64) Spec {
	return Spec{Kind: Lead, Kp: gain(kp), Num: num, Den: den}
}

// NewLag builds a lag compensator spec from its rational term.
func NewLag(kp float64, num, den []float64) Spec {
	return Spec{Kind: Lag, Kp: gain(kp), Num: num, Den: den}
}

// NewLeadLag builds a lead-lag spec from both rational terms.
func NewLeadLag(kp float64, leadNum, leadDen, lagNum, lagDen []float64) Spec {
	return Spec{
		Kind: LeadLag, Kp: gain(kp),
		Num: leadNum, Den: leadDen,
		LagNum: lagNum, LagDen: lagDen,
	}
}
