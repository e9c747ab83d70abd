// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type playheadMsg float64

type playbackEndedMsg struct{}

// playbackModel shows the playhead while a region plays.
type playbackModel struct {
	name     string
	duration time.Duration
	lo, hi   float64
	pos      float64
	ended    bool
	bar      progress.Model
	stop     func()
}

func newPlaybackModel(name string, duration time.Duration, lo, hi float64, stop func()) playbackModel {
	return playbackModel{
		name:     name,
		duration: duration,
		lo:       lo,
		hi:       hi,
		pos:      lo,
		stop:     stop,
		bar: progress.New(
			progress.WithGradient(string(primaryColor), string(accentColor)),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
	}
}

func (m playbackModel) Init() tea.Cmd { return nil }

func (m playbackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.stop()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(msg.Width-30, 60))

	case playheadMsg:
		m.pos = float64(msg)

	case playbackEndedMsg:
		m.pos = m.hi
		m.ended = true
		return m, tea.Quit
	}

	return m, nil
}

// progress within the played region
func (m playbackModel) fraction() float64 {
	if m.hi <= m.lo {
		return 1
	}
	return max(0, min(1, (m.pos-m.lo)/(m.hi-m.lo)))
}

func (m playbackModel) View() string {
	at := time.Duration(m.pos * float64(m.duration)).Round(10 * time.Millisecond)
	end := time.Duration(m.hi * float64(m.duration)).Round(10 * time.Millisecond)

	status := keyStyle.Render("q to stop")
	if m.ended {
		status = successStyle.Render("done")
	}

	return fmt.Sprintf("%s\n%s %s / %s  %s\n",
		titleStyle.Render("▶ "+m.name),
		m.bar.ViewAs(m.fraction()),
		valueStyle.Render(at.String()),
		keyStyle.Render(end.String()),
		status,
	)
}
