// SPDX-License-Identifier: EPL-2.0

package editor

import (
	"github.com/ik5/soundedit/audio"
)

// Clip is copied audio, detached from the buffer it came from.
type Clip struct {
	Samples    []float32
	SampleRate int
}

func (c Clip) Len() int { return len(c.Samples) }

// Duration in seconds.
func (c Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// State is the edit model: the current buffer, the selection and the last
// copied clip. Every method returns a new State; none modifies the receiver
// or its buffer.
type State struct {
	buffer  audio.Buffer
	trim    Trim
	clip    Clip
	hasClip bool
}

func NewState(buf audio.Buffer) State {
	return State{buffer: buf}
}

func (s State) Buffer() audio.Buffer { return s.buffer }
func (s State) Trim() Trim           { return s.trim }

// Clip returns the copied clip, if any.
func (s State) Clip() (Clip, bool) { return s.clip, s.hasClip }

// WithBuffer replaces the buffer, keeping the selection and the clip.
func (s State) WithBuffer(buf audio.Buffer) State {
	s.buffer = buf
	return s
}

func (s State) WithTrim(start, end float64) State {
	s.trim = NewTrim(start, end)
	return s
}

func (s State) ClearTrim() State {
	s.trim = Trim{}
	return s
}

// Copy stores the selected samples as the clip.
func (s State) Copy() State {
	from, to := s.trim.Indices(s.buffer.Len())

	samples := make([]float32, to-from)
	copy(samples, s.buffer.Samples[from:to])

	s.clip = Clip{Samples: samples, SampleRate: s.buffer.SampleRate}
	s.hasClip = true
	return s
}

// Paste appends the clip, or replaces the selection with it. With a selection
// the new trim spans exactly the pasted samples.
func (s State) Paste() (State, error) {
	if !s.hasClip {
		return s, ErrNothingToPaste
	}

	cur := s.buffer.Samples
	rate := s.buffer.SampleRate

	if !s.trim.IsSet() {
		samples := make([]float32, 0, len(cur)+s.clip.Len())
		samples = append(samples, cur...)
		samples = append(samples, s.clip.Samples...)

		s.buffer = audio.NewBuffer(samples, rate)
		return s, nil
	}

	from, to := s.trim.Indices(len(cur))

	samples := make([]float32, 0, from+s.clip.Len()+len(cur)-to)
	samples = append(samples, cur[:from]...)
	samples = append(samples, s.clip.Samples...)
	samples = append(samples, cur[to:]...)

	s.buffer = audio.NewBuffer(samples, rate)

	newDur := s.buffer.Duration()
	startSec := float64(from) / float64(rate)
	endSec := startSec + s.clip.Duration()
	if newDur > 0 {
		s.trim = NewTrim(clamp01(startSec/newDur), clamp01(endSec/newDur))
	}

	return s, nil
}

// Delete removes the selection, or everything when there is none, and
// clears the trim. A buffer never ends up empty: one zero sample is left
// instead.
func (s State) Delete() State {
	cur := s.buffer.Samples
	from, to := s.trim.Indices(len(cur))

	samples := make([]float32, 0, max(1, len(cur)-(to-from)))
	samples = append(samples, cur[:from]...)
	samples = append(samples, cur[to:]...)
	if len(samples) == 0 {
		samples = append(samples, 0)
	}

	s.buffer = audio.NewBuffer(samples, s.buffer.SampleRate)
	s.trim = Trim{}
	return s
}
