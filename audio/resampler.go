// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/soundedit/utils"
)

// Resampler streams from src to a target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// Includes basic anti-aliasing filtering when downsampling.
//
// For a source of N frames the output has floor((N-1)/ratio)+1 frames, so the
// duration is kept.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// window[k] holds source frame base-1+k; frames past the end of the source
	// repeat the last real frame.
	window [4][]float32
	base   int
	pos    float64 // read position in source frames

	read     int // real frames pulled from src
	eof      bool
	started  bool
	finished bool
	err      error

	srcBuf  []float32
	srcOff  int
	srcLen  int
	srcDone bool

	// One-pole low-pass state used when downsampling
	useFilter   bool
	filterAlpha float32
	filterState []float32
}

// NewResampler converts src to dstRate.
func NewResampler(src Source, dstRate int) *Resampler {
	ratio := 0.0
	if dstRate > 0 {
		ratio = float64(src.SampleRate()) / float64(dstRate)
	}

	return newResampler(src, ratio, dstRate)
}

// NewRateChanger plays src back rate times faster (rate < 1 slows it down).
// The output keeps the source sample rate, so its duration changes by 1/rate.
func NewRateChanger(src Source, rate float64) *Resampler {
	return newResampler(src, rate, src.SampleRate())
}

func newResampler(src Source, ratio float64, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, 4096*channels),
		useFilter:   ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	if ratio <= 0 || dstRate <= 0 {
		r.err = ErrInvalidSampleRate
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame pulls one frame from the source into dst.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	for r.srcOff >= r.srcLen {
		if r.srcDone {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.srcBuf)
		n -= n % r.channels
		r.srcOff, r.srcLen = 0, n

		if err == io.EOF || (err == nil && n == 0) {
			r.srcDone = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	copy(dst, r.srcBuf[r.srcOff:r.srcOff+r.channels])
	r.srcOff += r.channels

	if r.useFilter {
		if r.read == 0 {
			// Seed with the first frame to avoid a warm-up transient
			copy(r.filterState, dst)
		}
		for c := range r.channels {
			dst[c] = r.filterAlpha*dst[c] + (1-r.filterAlpha)*r.filterState[c]
			r.filterState[c] = dst[c]
		}
	}

	r.read++
	return true, nil
}

// load fills slot from the source, or repeats prev once the source is done.
func (r *Resampler) load(slot, prev []float32) error {
	if !r.eof {
		ok, err := r.nextFrame(slot)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		r.eof = true
	}

	copy(slot, prev)
	return nil
}

func (r *Resampler) init() error {
	ok, err := r.nextFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		r.eof = true
		r.finished = true
		return nil
	}

	copy(r.window[0], r.window[1])

	if err := r.load(r.window[2], r.window[1]); err != nil {
		return err
	}
	return r.load(r.window[3], r.window[2])
}

func (r *Resampler) advance() error {
	recycled := r.window[0]
	r.window[0] = r.window[1]
	r.window[1] = r.window[2]
	r.window[2] = r.window[3]
	r.window[3] = recycled
	r.base++

	return r.load(r.window[3], r.window[2])
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.err != nil {
		return 0, r.err
	}

	if !r.started {
		r.started = true
		if err := r.init(); err != nil {
			r.err = err
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for !r.finished && written < framesNeeded {
		for r.pos >= float64(r.base+1) {
			if err := r.advance(); err != nil {
				r.err = err
				return written * r.channels, err
			}
		}

		if r.eof && r.pos > float64(r.read-1) {
			r.finished = true
			break
		}

		alpha := float32(r.pos - float64(r.base))
		for c := range r.channels {
			dst[written*r.channels+c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], alpha)
		}

		written++
		r.pos += r.ratio
	}

	if r.finished {
		return written * r.channels, io.EOF
	}

	return written * r.channels, nil
}

// ResampleBuffer renders b at rate. A buffer already at rate is cloned.
func ResampleBuffer(b Buffer, rate int) (Buffer, error) {
	if rate <= 0 || b.SampleRate <= 0 {
		return Buffer{}, ErrInvalidSampleRate
	}

	if rate == b.SampleRate {
		return b.Clone(), nil
	}

	out, err := ReadBuffer(NewResampler(b.Source(), rate))
	if err != nil {
		return Buffer{}, fmt.Errorf("resampling to %d Hz: %w", rate, err)
	}

	return out, nil
}
