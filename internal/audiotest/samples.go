// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Constant returns n samples set to v.
func Constant(n int, v float32) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Ramp returns n samples counting up from 0 in steps of 1/n, so every sample
// is distinct.
func Ramp(n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = float32(i) / float32(n)
	}
	return s
}

// Sine returns n samples of a sine wave at frequency Hz.
func Sine(n, sampleRate int, frequency float64) []float32 {
	s := make([]float32, n)
	for i := range s {
		t := float64(i) / float64(sampleRate)
		s[i] = float32(math.Sin(2 * math.Pi * frequency * t))
	}
	return s
}
