// SPDX-License-Identifier: EPL-2.0

package utils

// ConvertSample scales a float sample to the 16-bit range: negative values by
// 32768, the rest by 32767. The result is clamped to [-32768, 32768].
//
// The upper bound is one past math.MaxInt16. Existing encoded files were
// produced with this clamp, so it stays.
func ConvertSample(x float32) int32 {
	var v float64
	if x < 0 {
		v = float64(x) * 0x8000
	} else {
		v = float64(x) * 0x7FFF
	}

	v = max(-0x8000, min(0x8000, v))

	return int32(v)
}

// ConvertToInt16 converts samples for the 16-bit encoders. Values are narrowed
// with two's complement wrap, so a clamped 32768 is stored as -32768.
func ConvertToInt16(samples []float32) []int16 {
	out := make([]int16, len(samples))
	for i, x := range samples {
		out[i] = int16(ConvertSample(x))
	}

	return out
}
