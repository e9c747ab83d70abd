// SPDX-License-Identifier: EPL-2.0

// Package peaks summarizes a buffer into the level sequence and path used to
// draw its waveform.
package peaks

import (
	"math"

	"github.com/ik5/soundedit/internal/config"
)

// DefaultScaling is the divisor ComputeRMS applies before its second root.
const DefaultScaling = config.RMSScaling

// ComputeRMS returns sqrt(sqrt(mean(x²)) / scaling), which lifts quiet
// passages so they stay visible. Empty input yields 0.
func ComputeRMS(samples []float32, scaling float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		v := float64(s)
		sum += v * v
	}

	return math.Sqrt(math.Sqrt(sum/float64(len(samples))) / scaling)
}

// ComputeChunkedRMS maps ComputeRMS over consecutive chunks of chunkSize
// samples. The last chunk may be shorter. A chunkSize <= 0 uses the default
// of 1024.
func ComputeChunkedRMS(samples []float32, chunkSize int) []float64 {
	if chunkSize <= 0 {
		chunkSize = config.ChunkSize
	}

	levels := make([]float64, 0, (len(samples)+chunkSize-1)/chunkSize)
	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		levels = append(levels, ComputeRMS(samples[i:end], DefaultScaling))
	}

	return levels
}
