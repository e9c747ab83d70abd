// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"
	"slices"
)

// Curve is how a breakpoint is approached from the one before it.
type Curve int

const (
	// Step jumps to the value at the breakpoint time.
	Step Curve = iota
	// Linear ramps from the previous breakpoint.
	Linear
	// Exponential ramps from the previous breakpoint. Values that are zero or
	// of opposite sign hold the previous value instead.
	Exponential
)

// Breakpoint is one entry on an automation timeline.
type Breakpoint struct {
	Time  float64 // seconds
	Value float64
	Curve Curve
}

// Automation is a parameter value over time, evaluated directly in the sample
// domain. Before the first breakpoint it holds Initial.
type Automation struct {
	Initial float64
	points  []Breakpoint
}

// NewAutomation returns a timeline with no breakpoints.
func NewAutomation(initial float64) *Automation {
	return &Automation{Initial: initial}
}

// Breakpoints returns a copy of the timeline.
func (a *Automation) Breakpoints() []Breakpoint {
	return slices.Clone(a.points)
}

func (a *Automation) insert(p Breakpoint) *Automation {
	// After any breakpoint at the same time, so insertion order breaks ties
	i, _ := slices.BinarySearchFunc(a.points, p.Time, func(b Breakpoint, t float64) int {
		if b.Time <= t {
			return -1
		}
		return 1
	})
	a.points = slices.Insert(a.points, i, p)

	return a
}

func (a *Automation) SetValueAtTime(v, t float64) *Automation {
	return a.insert(Breakpoint{Time: t, Value: v, Curve: Step})
}

func (a *Automation) LinearRampToValueAtTime(v, t float64) *Automation {
	return a.insert(Breakpoint{Time: t, Value: v, Curve: Linear})
}

func (a *Automation) ExponentialRampToValueAtTime(v, t float64) *Automation {
	return a.insert(Breakpoint{Time: t, Value: v, Curve: Exponential})
}

// ValueAt evaluates the timeline at t seconds.
func (a *Automation) ValueAt(t float64) float64 {
	// Index of the first breakpoint strictly after t
	next := 0
	for next < len(a.points) && a.points[next].Time <= t {
		next++
	}

	prev := Breakpoint{Value: a.Initial}
	if next > 0 {
		prev = a.points[next-1]
	}

	if next == len(a.points) {
		return prev.Value
	}

	end := a.points[next]
	if end.Curve == Step || end.Time <= prev.Time {
		return prev.Value
	}

	frac := (t - prev.Time) / (end.Time - prev.Time)

	switch end.Curve {
	case Linear:
		return prev.Value + (end.Value-prev.Value)*frac
	case Exponential:
		if prev.Value == 0 || prev.Value*end.Value < 0 {
			return prev.Value
		}
		return prev.Value * math.Pow(end.Value/prev.Value, frac)
	}

	return prev.Value
}

// Values samples the timeline at every frame of a context n frames long.
func (a *Automation) Values(n, sampleRate int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = a.ValueAt(float64(i) / float64(sampleRate))
	}
	return out
}
