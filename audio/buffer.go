// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/soundedit/internal/config"
)

// Buffer is a mono block of samples at a fixed sample rate.
//
// Edits never resize a Buffer in place: every operation builds a new one and
// the previous value is simply dropped.
type Buffer struct {
	Samples    []float32
	SampleRate int
}

// NewBuffer wraps samples without copying them.
func NewBuffer(samples []float32, sampleRate int) Buffer {
	return Buffer{Samples: samples, SampleRate: sampleRate}
}

// Len returns the number of samples.
func (b Buffer) Len() int { return len(b.Samples) }

// Duration in seconds.
func (b Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

// EncodedSize is the size of the buffer encoded as 16-bit PCM, in bytes.
func (b Buffer) EncodedSize() int {
	return len(b.Samples) * config.BytesPerSample
}

// Clone returns a copy that shares no memory with b.
func (b Buffer) Clone() Buffer {
	samples := make([]float32, len(b.Samples))
	copy(samples, b.Samples)

	return Buffer{Samples: samples, SampleRate: b.SampleRate}
}

// Source returns a streaming view over the buffer.
func (b Buffer) Source() Source {
	return &bufferSource{samples: b.Samples, sampleRate: b.SampleRate}
}

type bufferSource struct {
	samples    []float32
	sampleRate int
	pos        int
}

func (s *bufferSource) SampleRate() int { return s.sampleRate }
func (s *bufferSource) Channels() int   { return 1 }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.samples) {
		return n, io.EOF
	}

	return n, nil
}

// ReadBuffer drains src into a mono Buffer, averaging channels when src has
// more than one.
func ReadBuffer(src Source) (Buffer, error) {
	if src.SampleRate() <= 0 {
		return Buffer{}, ErrInvalidSampleRate
	}

	mono := NewMonoMixer(src)

	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}
	buf := make([]float32, size)

	var samples []float32

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return Buffer{}, fmt.Errorf("%w", err)
		}

		if n == 0 {
			// A source that returns nothing without an error is done.
			break
		}
	}

	return Buffer{Samples: samples, SampleRate: src.SampleRate()}, nil
}
