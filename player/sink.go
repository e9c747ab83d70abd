// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Sink is where a Player sends its samples.
type Sink interface {
	// Play starts s at sampleRate. done runs once s is drained, unless the
	// sink is cleared first.
	Play(sampleRate int, s beep.Streamer, done func()) error
	// Clear stops everything the sink is playing.
	Clear()
}

// SpeakerSink plays through the default output device. The speaker is
// (re)initialized whenever the sample rate changes.
type SpeakerSink struct {
	mu   sync.Mutex
	rate beep.SampleRate
}

func NewSpeakerSink() *SpeakerSink {
	return &SpeakerSink{}
}

func (s *SpeakerSink) Play(sampleRate int, st beep.Streamer, done func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sr := beep.SampleRate(sampleRate)
	if s.rate != sr {
		if s.rate != 0 {
			speaker.Close()
		}
		if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
			s.rate = 0
			return fmt.Errorf("initializing speaker at %d Hz: %w", sampleRate, err)
		}
		s.rate = sr
	}

	speaker.Play(beep.Seq(st, beep.Callback(done)))
	return nil
}

func (s *SpeakerSink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rate != 0 {
		speaker.Clear()
	}
}

// Close releases the output device.
func (s *SpeakerSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rate != 0 {
		speaker.Close()
		s.rate = 0
	}
}

// monoStreamer feeds mono samples to both speaker channels.
type monoStreamer struct {
	samples []float32
	pos     int
}

func (m *monoStreamer) Stream(dst [][2]float64) (int, bool) {
	if m.pos >= len(m.samples) {
		return 0, false
	}

	n := min(len(dst), len(m.samples)-m.pos)
	for i := range n {
		v := float64(m.samples[m.pos+i])
		dst[i] = [2]float64{v, v}
	}
	m.pos += n

	return n, true
}

func (m *monoStreamer) Err() error { return nil }
