// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates sources and sample slices for tests.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame i.
type Waveform func(i, ch int) float32

// MockSource generates a fixed number of frames from a Waveform. It satisfies
// audio.Source without importing the audio package.
type MockSource struct {
	rate   int
	chans  int
	frames int
	pos    int
	wave   Waveform
	closed bool
}

// NewMockSource returns a source of frames frames per channel.
func NewMockSource(sampleRate, channels, frames int, wave Waveform) *MockSource {
	return &MockSource{rate: sampleRate, chans: channels, frames: frames, wave: wave}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewSineSource plays the same sine on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	step := 2 * math.Pi * frequency / float64(sampleRate)
	return NewMockSource(sampleRate, channels, frames, func(i, _ int) float32 {
		return float32(math.Sin(step * float64(i)))
	})
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.chans }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Remaining is the number of frames not yet read.
func (m *MockSource) Remaining() int { return m.frames - m.pos }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	n := min(len(dst)/m.chans, m.Remaining())
	if n <= 0 && m.Remaining() == 0 {
		return 0, io.EOF
	}

	i := 0
	for f := m.pos; f < m.pos+n; f++ {
		for ch := range m.chans {
			dst[i] = m.wave(f, ch)
			i++
		}
	}
	m.pos += n

	if m.Remaining() == 0 {
		return i, io.EOF
	}
	return i, nil
}
