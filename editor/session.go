// SPDX-License-Identifier: EPL-2.0

package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ik5/soundedit"
	"github.com/ik5/soundedit/audio"
	"github.com/ik5/soundedit/effects"
	"github.com/ik5/soundedit/internal/config"
	"github.com/ik5/soundedit/internal/logging"
	"github.com/ik5/soundedit/peaks"
	"github.com/ik5/soundedit/player"
)

var logger = logging.NewLogger("soundedit/editor")

// Option configures a Session.
type Option func(*Session)

func WithGovernor(g audio.Governor) Option {
	return func(s *Session) { s.governor = g }
}

func WithRenderer(r effects.Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

func WithPlayer(p *player.Player) Option {
	return func(s *Session) { s.player = p }
}

// WithAutoPlay plays the selection after every effect.
func WithAutoPlay(on bool) Option {
	return func(s *Session) { s.autoPlay = on }
}

// Session owns the edit state of one open clip. Buffer edits run one at a
// time: a second one arriving while the first renders gets ErrBusy.
type Session struct {
	governor audio.Governor
	renderer effects.Renderer
	player   *player.Player
	autoPlay bool
	host     Host

	busy atomic.Bool

	mu     sync.Mutex
	state  State
	levels []float64
}

// NewSession opens buf and reports its peaks to host.
func NewSession(buf audio.Buffer, host Host, opts ...Option) *Session {
	if host == nil {
		host = NopHost{}
	}

	s := &Session{
		governor: audio.DefaultGovernor(),
		renderer: effects.DefaultRenderer(),
		host:     host,
		state:    NewState(buf),
	}
	for _, opt := range opts {
		opt(s)
	}

	levels := peaks.ComputeChunkedRMS(buf.Samples, config.ChunkSize)
	s.levels = levels
	host.PeaksChanged(levels, peaks.Analyze(levels, peaks.Width, peaks.Height))

	return s
}

// State returns a snapshot of the edit state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Levels returns the RMS levels of the current buffer.
func (s *Session) Levels() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levels
}

func (s *Session) SetTrim(start, end float64) {
	s.mu.Lock()
	s.state = s.state.WithTrim(start, end)
	s.mu.Unlock()
}

func (s *Session) ClearTrim() {
	s.mu.Lock()
	s.state = s.state.ClearTrim()
	s.mu.Unlock()
}

func (s *Session) Copy() {
	s.mu.Lock()
	s.state = s.state.Copy()
	s.mu.Unlock()
}

// acquire claims the single edit slot.
func (s *Session) acquire(ctx context.Context) (func(), error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	if err := ctx.Err(); err != nil {
		s.busy.Store(false)
		return nil, fmt.Errorf("%w", err)
	}
	return func() { s.busy.Store(false) }, nil
}

// change is the result of a buffer edit. Only the buffer, and the trim when
// setTrim is true, are applied on commit.
type change struct {
	buffer  audio.Buffer
	trim    Trim
	setTrim bool
}

// submit fits c under the byte ceiling and merges it into the current state.
// Selections and copies made while the edit was rendering are kept. A refused
// edit leaves the state alone and is reported to the host.
func (s *Session) submit(c change, label string) error {
	buf, err := s.governor.Fit(c.buffer)
	if err != nil {
		logger.Warnf("%s refused: %v", label, err)
		s.host.Error(err.Error())
		return err
	}

	levels := peaks.ComputeChunkedRMS(buf.Samples, config.ChunkSize)

	s.mu.Lock()
	next := s.state.WithBuffer(buf)
	if c.setTrim {
		next.trim = c.trim
	}
	s.state = next
	s.levels = levels
	s.mu.Unlock()

	s.host.PeaksChanged(levels, peaks.Analyze(levels, peaks.Width, peaks.Height))
	s.host.EditCommitted(newEdit(label, buf))

	return nil
}

func (s *Session) Paste(ctx context.Context) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	cur := s.State()
	next, err := cur.Paste()
	if err != nil {
		return err
	}
	return s.submit(change{
		buffer:  next.Buffer(),
		trim:    next.Trim(),
		setTrim: cur.Trim().IsSet(),
	}, "paste")
}

func (s *Session) Delete(ctx context.Context) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	next := s.State().Delete()
	return s.submit(change{buffer: next.Buffer(), setTrim: true}, "delete")
}

// ApplyEffect renders kind over the selection. Buffers too short to render
// are left alone without an error. A set trim is moved to where the
// selection ends up in the rendered buffer.
func (s *Session) ApplyEffect(ctx context.Context, kind effects.Kind) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}

	cur := s.State()
	lo, hi := cur.Trim().Bounds()

	res, err := s.renderer.Process(cur.Buffer(), kind, lo, hi)
	if errors.Is(err, effects.ErrEffectSkipped) {
		release()
		logger.Debugf("%s skipped on %d samples", kind, cur.Buffer().Len())
		return nil
	}
	if err != nil {
		release()
		s.host.Error(err.Error())
		return err
	}

	c := change{buffer: res.Buffer, setTrim: cur.Trim().IsSet()}
	if c.setTrim {
		c.trim = NewTrim(res.TrimStart, res.TrimEnd)
	}

	err = s.submit(c, kind.String())
	release()
	if err != nil {
		return err
	}

	if s.autoPlay && s.player != nil {
		if err := s.Play(); err != nil {
			logger.Warnf("playing after %s: %v", kind, err)
		}
	}

	return nil
}

// Update replaces the samples with ones the host applied itself, such as an
// undo. The rate is kept and no edit is reported back. Like any buffer edit
// it gets ErrBusy while another one is rendering; nothing is queued, so the
// host must send it again once that edit has been committed.
func (s *Session) Update(ctx context.Context, samples []float32) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	data := make([]float32, max(1, len(samples)))
	copy(data, samples)

	levels := peaks.ComputeChunkedRMS(data, config.ChunkSize)

	s.mu.Lock()
	buf := audio.NewBuffer(data, s.state.Buffer().SampleRate)
	s.state = s.state.WithBuffer(buf)
	s.levels = levels
	s.mu.Unlock()

	s.host.PeaksChanged(levels, peaks.Analyze(levels, peaks.Width, peaks.Height))
	return nil
}

// Bytes encodes the current buffer as "wav" or "mp3".
func (s *Session) Bytes(format string) ([]byte, error) {
	data, err := soundedit.Encode(s.State().Buffer(), format)
	if err != nil {
		return nil, fmt.Errorf("encoding current buffer: %w", err)
	}
	return data, nil
}

// Play plays the selection, stopping any playback first.
func (s *Session) Play() error {
	if s.player == nil {
		return ErrNoPlayer
	}

	st := s.State()
	lo, hi := st.Trim().Bounds()

	return s.player.Play(st.Buffer(), lo, hi, s.host.Playhead, s.host.PlaybackEnded)
}

// Stop ends playback. The ended notification is not sent for a manual stop.
func (s *Session) Stop() {
	if s.player != nil {
		s.player.Stop()
	}
}
