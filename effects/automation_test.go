// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutomation_ValueAt(t *testing.T) {
	t.Parallel()

	a := NewAutomation(1).
		SetValueAtTime(1, 1).
		LinearRampToValueAtTime(0, 2).
		SetValueAtTime(0.5, 3).
		ExponentialRampToValueAtTime(2, 4)

	tests := []struct {
		t    float64
		want float64
	}{
		{t: 0, want: 1},
		{t: 1, want: 1},
		{t: 1.25, want: 0.75},
		{t: 1.5, want: 0.5},
		{t: 2, want: 0},
		{t: 2.9, want: 0},
		{t: 3, want: 0.5},
		{t: 3.5, want: 1},
		{t: 4, want: 2},
		{t: 10, want: 2},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, a.ValueAt(tt.t), 1e-9, "ValueAt(%v)", tt.t)
	}
}

func TestAutomation_TiesKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	a := NewAutomation(1).
		SetValueAtTime(1, 0).
		LinearRampToValueAtTime(0, 1).
		SetValueAtTime(1, 1)

	assert.InDelta(t, 0.5, a.ValueAt(0.5), 1e-9)
	assert.Equal(t, 1.0, a.ValueAt(1), "a step at the end of a ramp wins")

	times := []float64{}
	for _, p := range a.Breakpoints() {
		times = append(times, p.Time)
	}
	assert.Equal(t, []float64{0, 1, 1}, times)
	assert.Equal(t, Linear, a.Breakpoints()[1].Curve)
}

func TestAutomation_RampFromInitial(t *testing.T) {
	t.Parallel()

	a := NewAutomation(0).LinearRampToValueAtTime(1, 2)

	assert.InDelta(t, 0.5, a.ValueAt(1), 1e-9)
}

func TestAutomation_ExponentialThroughZeroHolds(t *testing.T) {
	t.Parallel()

	a := NewAutomation(0).ExponentialRampToValueAtTime(1, 1)
	assert.Equal(t, 0.0, a.ValueAt(0.5))

	b := NewAutomation(1).ExponentialRampToValueAtTime(-1, 1)
	assert.Equal(t, 1.0, b.ValueAt(0.5))
}

func TestAutomation_Values(t *testing.T) {
	t.Parallel()

	a := NewAutomation(0).LinearRampToValueAtTime(1, 1)
	v := a.Values(5, 4)

	assert.Len(t, v, 5)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, v, 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), NewAutomation(1).ExponentialRampToValueAtTime(0.5, 1).ValueAt(0.5), 1e-9)
}
