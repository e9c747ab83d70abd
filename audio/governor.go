// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/soundedit/internal/config"
	"github.com/ik5/soundedit/internal/logging"
)

var logger = logging.NewLogger("soundedit/audio")

// Governor keeps buffers under the encoded byte ceiling.
type Governor struct {
	// ByteLimit is the exclusive ceiling for the 16-bit PCM encoding.
	ByteLimit int
	// FallbackRate is tried once when a buffer is over the limit.
	FallbackRate int
	// Limits decides which rates can be rendered offline.
	Limits ContextLimits
}

func DefaultGovernor() Governor {
	return Governor{
		ByteLimit:    config.ByteLimit,
		FallbackRate: config.FallbackSampleRate,
		Limits:       DefaultContextLimits(),
	}
}

// Fits reports whether b is under the byte ceiling as is.
func (g Governor) Fits(b Buffer) bool {
	return b.EncodedSize() < g.ByteLimit
}

// Fit returns b unchanged when it is under the ceiling, b resampled to the
// fallback rate when that is enough, and ErrTooLarge otherwise.
func (g Governor) Fit(b Buffer) (Buffer, error) {
	if g.Fits(b) {
		return b, nil
	}

	if b.Duration()*float64(g.FallbackRate)*config.BytesPerSample < float64(g.ByteLimit) {
		logger.Debugf("%d bytes over the %d byte limit, resampling %d Hz to %d Hz",
			b.EncodedSize(), g.ByteLimit, b.SampleRate, g.FallbackRate)
		return g.Resample(b, g.FallbackRate)
	}

	return Buffer{}, fmt.Errorf("%w: %.1f seconds at %d Hz", ErrTooLarge, b.Duration(), g.FallbackRate)
}

// Resample renders b at rate through an offline context. When the context
// cannot be built and rate is exactly half the source rate, every other
// sample is dropped instead.
func (g Governor) Resample(b Buffer, rate int) (Buffer, error) {
	length := int(math.Ceil(b.Duration() * float64(rate)))

	_, err := g.Limits.NewContext(length, rate)
	if err == nil {
		return ResampleBuffer(b, rate)
	}

	if errors.Is(err, ErrUnsupportedSampleRate) && rate*2 == b.SampleRate {
		logger.Debugf("%v, decimating instead", err)
		return DropEveryOtherSample(b), nil
	}

	return Buffer{}, fmt.Errorf("%w: %d Hz to %d Hz: %w", ErrResampleUnsupported, b.SampleRate, rate, err)
}

// DropEveryOtherSample halves both the length and the rate of b.
func DropEveryOtherSample(b Buffer) Buffer {
	n := len(b.Samples) / 2
	samples := make([]float32, n)
	for i := range n {
		samples[i] = b.Samples[i*2]
	}

	return Buffer{Samples: samples, SampleRate: b.SampleRate / 2}
}
