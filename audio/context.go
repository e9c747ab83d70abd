// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/soundedit/internal/config"
)

// OfflineContext describes a non-realtime render target: exactly Length
// frames at SampleRate.
type OfflineContext struct {
	Length     int
	SampleRate int
}

// Duration of the context in seconds.
func (c OfflineContext) Duration() float64 {
	return float64(c.Length) / float64(c.SampleRate)
}

// Time returns the time in seconds of frame i.
func (c OfflineContext) Time(i int) float64 {
	return float64(i) / float64(c.SampleRate)
}

// Frame returns the frame index at t seconds, rounded down and clamped to
// [0, Length].
func (c OfflineContext) Frame(t float64) int {
	i := int(t * float64(c.SampleRate))
	return max(0, min(c.Length, i))
}

// ContextLimits is the range of sample rates an offline context can be built
// at. Some platforms refuse low rates, which is what the decimation fallback
// in Governor.Resample exists for.
type ContextLimits struct {
	MinSampleRate int
	MaxSampleRate int
}

func DefaultContextLimits() ContextLimits {
	return ContextLimits{
		MinSampleRate: config.MinContextSampleRate,
		MaxSampleRate: config.MaxContextSampleRate,
	}
}

// Supports reports whether a context can be built at rate.
func (l ContextLimits) Supports(rate int) bool {
	return rate >= l.MinSampleRate && rate <= l.MaxSampleRate
}

// NewContext builds an offline context of length frames at rate.
func (l ContextLimits) NewContext(length, rate int) (OfflineContext, error) {
	if length < 1 {
		return OfflineContext{}, ErrContextTooShort
	}

	if !l.Supports(rate) {
		return OfflineContext{}, fmt.Errorf("%w: %d Hz (supported %d-%d Hz)",
			ErrUnsupportedSampleRate, rate, l.MinSampleRate, l.MaxSampleRate)
	}

	return OfflineContext{Length: length, SampleRate: rate}, nil
}
