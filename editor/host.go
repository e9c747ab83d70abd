// SPDX-License-Identifier: EPL-2.0

package editor

import (
	"github.com/google/uuid"

	"github.com/ik5/soundedit/audio"
	"github.com/ik5/soundedit/peaks"
)

// Host receives everything a Session reports back. Calls are made after the
// session's own locks are released, from whichever goroutine did the work.
//
// Buffer edits pushed by the host through Session.Update are refused with
// ErrBusy while an effect renders. The host should retry them after the next
// EditCommitted or Error call.
type Host interface {
	// PeaksChanged delivers the levels and waveform of a new buffer.
	PeaksChanged(levels []float64, path peaks.Path)
	// EditCommitted is called for every edit the session accepted, so the
	// host can record it for undo.
	EditCommitted(edit Edit)
	// Playhead reports the playback position as a fraction of the buffer.
	Playhead(pos float64)
	PlaybackEnded()
	// Error reports a refused edit.
	Error(msg string)
}

// Edit is one committed change.
type Edit struct {
	ID     uuid.UUID
	Label  string
	Buffer audio.Buffer
}

func newEdit(label string, buf audio.Buffer) Edit {
	return Edit{ID: uuid.New(), Label: label, Buffer: buf}
}

// NopHost ignores every notification. Embed it to handle only some of them.
type NopHost struct{}

func (NopHost) PeaksChanged([]float64, peaks.Path) {}
func (NopHost) EditCommitted(Edit)                 {}
func (NopHost) Playhead(float64)                   {}
func (NopHost) PlaybackEnded()                     {}
func (NopHost) Error(string)                       {}
