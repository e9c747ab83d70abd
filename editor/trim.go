// SPDX-License-Identifier: EPL-2.0

package editor

import "math"

// Trim is a selection given as fractions of the buffer. The pair is kept in
// the order it was set; use Bounds to read it. The zero value selects the
// whole buffer.
type Trim struct {
	Start, End float64
	set        bool
}

func NewTrim(start, end float64) Trim {
	return Trim{Start: start, End: end, set: true}
}

// IsSet reports whether a selection was made.
func (t Trim) IsSet() bool { return t.set }

// Bounds returns the selection as (min, max), clamped to [0, 1].
func (t Trim) Bounds() (float64, float64) {
	if !t.set {
		return 0, 1
	}
	a, b := clamp01(t.Start), clamp01(t.End)
	return math.Min(a, b), math.Max(a, b)
}

// Indices maps the selection onto a buffer of n samples.
func (t Trim) Indices(n int) (int, int) {
	lo, hi := t.Bounds()
	return index(lo, n), index(hi, n)
}

// index is floor(frac*n) clamped to [0, n]. Products within 1e-6 of an
// integer snap to it, so fractions computed from sample positions map back
// to the same sample.
func index(frac float64, n int) int {
	x := frac * float64(n)
	if r := math.Round(x); math.Abs(x-r) < 1e-6 {
		x = r
	}
	return max(0, min(n, int(math.Floor(x))))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
