// Package vent decides whether a window should be open given the target room
// temperature, the current inside/outside temperatures and the weather.
//
// Inside and outside readings are truncated toward zero before comparison so
// that sub-degree sensor jitter does not flip the decision. A reading that
// hovers exactly on a whole degree can still toggle between calls; callers
// that drive an actuator should rate-limit changes themselves.
package vent

import "math"

// Branch names the rule that produced a decision.
type Branch string

const (
	BranchInvalidReading   Branch = "INVALID_READING"
	BranchBadWeather       Branch = "BAD_WEATHER"
	BranchBelowZero        Branch = "BELOW_ZERO"
	BranchCoolerOutside    Branch = "COOLER_OUTSIDE"
	BranchNotCoolerOutside Branch = "NOT_COOLER_OUTSIDE"
	BranchWarmerOutside    Branch = "WARMER_OUTSIDE"
	BranchNotWarmerOutside Branch = "NOT_WARMER_OUTSIDE"
	BranchAtTarget         Branch = "AT_TARGET"
)

var branchDescriptions = map[Branch]string{
	BranchInvalidReading:   "sensor reading is not a finite number",
	BranchBadWeather:       "bad weather",
	BranchBelowZero:        "below zero outside",
	BranchCoolerOutside:    "colder outside, opening needed",
	BranchNotCoolerOutside: "no point to open but need to be colder",
	BranchWarmerOutside:    "warmer outside, opening needed",
	BranchNotWarmerOutside: "no point to open but it is cold",
	BranchAtTarget:         "already at target",
}

// Description is the human-readable trace message for b.
func (b Branch) Description() string {
	if d, ok := branchDescriptions[b]; ok {
		return d
	}
	return string(b)
}

// Input is one set of readings to evaluate.
type Input struct {
	DesiredC  float64 `json:"desired_temp_c"`
	Favorable bool    `json:"favorable"`
	OutsideC  float64 `json:"outside_temp_c"`
	InsideC   float64 `json:"inside_temp_c"`
}

// Decision is the result of one evaluation.
type Decision struct {
	Open   bool   `json:"open"`
	Branch Branch `json:"branch"`
}

// Tracer receives the branch taken by every evaluation.
type Tracer interface {
	Trace(b Branch, in Input)
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(b Branch, in Input)

func (f TracerFunc) Trace(b Branch, in Input) { f(b, in) }

// Decider evaluates readings. The zero value is usable and silent.
type Decider struct {
	tracer Tracer
}

// NewDecider returns a Decider that reports branches to t (may be nil).
func NewDecider(t Tracer) *Decider {
	return &Decider{tracer: t}
}

// ShouldOpen reports whether the window should be open.
func (d *Decider) ShouldOpen(desired float64, favorable bool, outside, inside float64) bool {
	return d.Decide(Input{DesiredC: desired, Favorable: favorable, OutsideC: outside, InsideC: inside}).Open
}

// Decide evaluates in and returns the decision with the branch that fired.
func (d *Decider) Decide(in Input) Decision {
	dec := decide(in)
	if d != nil && d.tracer != nil {
		d.tracer.Trace(dec.Branch, in)
	}
	return dec
}

func decide(in Input) Decision {
	if !finite(in.DesiredC) || !finite(in.OutsideC) || !finite(in.InsideC) {
		return Decision{Branch: BranchInvalidReading}
	}

	outside := Truncate(in.OutsideC)
	inside := Truncate(in.InsideC)

	if !in.Favorable {
		return Decision{Branch: BranchBadWeather}
	}
	if outside < 0 {
		return Decision{Branch: BranchBelowZero}
	}

	// desired is compared against the truncated inside reading
	if in.DesiredC < inside {
		if outside < inside {
			return Decision{Open: true, Branch: BranchCoolerOutside}
		}
		return Decision{Branch: BranchNotCoolerOutside}
	}
	if in.DesiredC > inside {
		if outside > inside {
			return Decision{Open: true, Branch: BranchWarmerOutside}
		}
		return Decision{Branch: BranchNotWarmerOutside}
	}

	return Decision{Branch: BranchAtTarget}
}

// ShouldOpen evaluates without tracing.
func ShouldOpen(desired float64, favorable bool, outside, inside float64) bool {
	return decide(Input{DesiredC: desired, Favorable: favorable, OutsideC: outside, InsideC: inside}).Open
}

// Truncate drops the fractional part toward zero: 21.9 -> 21, -0.5 -> -0.
func Truncate(v float64) float64 {
	return math.Trunc(v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
