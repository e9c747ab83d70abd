// SPDX-License-Identifier: EPL-2.0

// Package player plays the trimmed region of a buffer and reports the
// playhead as a fraction of the whole buffer.
//
//	p := player.New(player.NewSpeakerSink())
//	err := p.Play(buf, 0.25, 0.75, func(pos float64) {
//		fmt.Printf("\r%.0f%%", pos*100)
//	}, func() {
//		fmt.Println("done")
//	})
//
// Calling Stop, or starting another playback, cancels the previous one
// without running its ended callback.
package player

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/ik5/soundedit/audio"
	"github.com/ik5/soundedit/internal/config"
	"github.com/ik5/soundedit/internal/logging"
)

var logger = logging.NewLogger("soundedit/player")

// Option configures a Player.
type Option func(*Player)

// WithClock replaces time.Now for the playhead.
func WithClock(now func() time.Time) Option {
	return func(p *Player) { p.now = now }
}

// WithInterval sets how often the playhead is polled.
func WithInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.interval = d
		}
	}
}

type Player struct {
	sink     Sink
	now      func() time.Time
	interval time.Duration

	mu     sync.Mutex
	active *playback
}

type playback struct {
	stop chan struct{}
}

func New(sink Sink, opts ...Option) *Player {
	p := &Player{
		sink:     sink,
		now:      time.Now,
		interval: time.Second / config.PlayheadFPS,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play stops anything already playing and starts the [start, end) fraction
// of buf. The bounds may be given in either order. onUpdate receives the
// playhead while it is inside the region; onEnded runs when the region has
// been played to the end. Either callback may be nil.
func (p *Player) Play(buf audio.Buffer, start, end float64, onUpdate func(float64), onEnded func()) error {
	p.Stop()

	lo, hi := math.Min(start, end), math.Max(start, end)
	lo, hi = math.Max(0, lo), math.Min(1, hi)

	n := buf.Len()
	from, to := int(lo*float64(n)), int(hi*float64(n))
	if from >= to {
		return ErrEmptyRegion
	}

	pb := &playback{stop: make(chan struct{})}

	p.mu.Lock()
	p.active = pb
	p.mu.Unlock()

	st := &monoStreamer{samples: buf.Samples[from:to]}
	done := func() {
		// Runs on the sink's goroutine, which may hold the speaker lock.
		go p.finish(pb, onEnded)
	}

	if err := p.sink.Play(buf.SampleRate, st, done); err != nil {
		p.mu.Lock()
		if p.active == pb {
			p.active = nil
		}
		p.mu.Unlock()
		return err
	}

	logger.Debugf("playing %.3f-%.3f of %.3f s", lo, hi, buf.Duration())

	if onUpdate != nil && buf.Duration() > 0 {
		go p.track(pb, lo, hi, buf.Duration(), onUpdate)
	}

	return nil
}

// track reports lo + elapsed/duration until it reaches hi or pb stops.
func (p *Player) track(pb *playback, lo, hi, duration float64, onUpdate func(float64)) {
	started := p.now()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-pb.stop:
			return
		case <-ticker.C:
			pos := lo + p.now().Sub(started).Seconds()/duration
			if pos >= hi {
				return
			}
			onUpdate(pos)
		}
	}
}

func (p *Player) finish(pb *playback, onEnded func()) {
	p.mu.Lock()
	if p.active != pb {
		// stopped by hand
		p.mu.Unlock()
		return
	}
	p.active = nil
	close(pb.stop)
	p.mu.Unlock()

	if onEnded != nil {
		onEnded()
	}
}

func (p *Player) stop() error {
	p.mu.Lock()
	pb := p.active
	p.active = nil
	p.mu.Unlock()

	if pb == nil {
		return ErrNotPlaying
	}

	close(pb.stop)
	p.sink.Clear()
	return nil
}

// Stop ends playback without running the ended callback. Stopping twice is
// harmless.
func (p *Player) Stop() {
	if err := p.stop(); err != nil {
		if errors.Is(err, ErrNotPlaying) {
			logger.Debug("stop called while not playing")
			return
		}
		logger.Warnf("stopping playback: %v", err)
	}
}

// Playing reports whether a region is being played.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active != nil
}
