// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ik5/soundedit"
	"github.com/ik5/soundedit/audio"
	"github.com/ik5/soundedit/editor"
	"github.com/ik5/soundedit/effects"
	"github.com/ik5/soundedit/internal/config"
	"github.com/ik5/soundedit/peaks"
	"github.com/ik5/soundedit/player"
)

func load(path string) (audio.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return audio.Buffer{}, err
	}
	return soundedit.Decode(data, soundedit.FormatOf(path))
}

// printHost reports session events on the terminal.
type printHost struct {
	editor.NopHost
}

func (printHost) EditCommitted(e editor.Edit) {
	printSuccess(fmt.Sprintf("%s %s", e.Label, keyStyle.Render(fmt.Sprintf("(%d samples, %s)", e.Buffer.Len(), e.ID))))
}

func (printHost) Error(msg string) { printError(msg) }

type EditCmd struct {
	Input    string   `arg:"" type:"existingfile" help:"Clip to edit."`
	Output   string   `arg:"" type:"path" help:"Where to save the result, .wav or .mp3."`
	Commands []string `arg:"" optional:"" help:"Edit commands in order, e.g. trim:0.25:0.75 effect:echo copy paste delete clear-trim."`

	ByteLimit    int `help:"Largest encoded size a clip may grow to." default:"${byte_limit}" env:"SOUNDEDIT_BYTE_LIMIT"`
	FallbackRate int `help:"Sample rate oversized clips are resampled to." default:"${fallback_rate}" env:"SOUNDEDIT_FALLBACK_RATE"`
}

func (c *EditCmd) Run(_ *Globals) error {
	buf, err := load(c.Input)
	if err != nil {
		return err
	}

	gov := audio.DefaultGovernor()
	gov.ByteLimit = c.ByteLimit
	gov.FallbackRate = c.FallbackRate

	s := editor.NewSession(buf, printHost{}, editor.WithGovernor(gov))
	ctx := context.Background()

	for _, text := range c.Commands {
		cmd, err := editor.ParseCommand(text)
		if err != nil {
			return err
		}
		switch cmd.Op {
		case editor.OpPlay, editor.OpStop, editor.OpBytes:
			return fmt.Errorf("%q is not available in edit, use the play subcommand", text)
		}
		if _, err := s.Dispatch(ctx, cmd); err != nil {
			return fmt.Errorf("%s: %w", text, err)
		}
	}

	format := soundedit.FormatOf(c.Output)
	data, err := s.Bytes(format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Output, data, 0o644); err != nil {
		return err
	}

	out := s.State().Buffer()
	fmt.Println(infoBox("Saved "+filepath.Base(c.Output), [][2]string{
		{"Duration", fmt.Sprintf("%.2fs", out.Duration())},
		{"Sample rate", fmt.Sprintf("%d Hz", out.SampleRate)},
		{"Size", formatBytes(len(data))},
	}))

	return nil
}

type PeaksCmd struct {
	Input string `arg:"" type:"existingfile" help:"Clip to analyze."`

	ChunkSize int    `help:"Samples per RMS level." default:"${chunk_size}"`
	SVG       string `help:"Write the waveform path (SVG d attribute) to this file." type:"path" placeholder:"FILE"`
	PNG       string `help:"Write the waveform as a PNG image." type:"path" placeholder:"FILE"`
	Width     int    `help:"PNG width in pixels." default:"600"`
	Height    int    `help:"PNG height in pixels." default:"160"`
	Levels    bool   `help:"Print every level."`
}

func (c *PeaksCmd) Run(_ *Globals) error {
	buf, err := load(c.Input)
	if err != nil {
		return err
	}

	levels := peaks.ComputeChunkedRMS(buf.Samples, c.ChunkSize)
	path := peaks.Analyze(levels, peaks.Width, peaks.Height)

	if c.Levels {
		for i, v := range levels {
			fmt.Printf("%6d %.4f\n", i, v)
		}
	}

	if c.SVG != "" {
		svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 %d %d %d"><path d="%s"/></svg>`+"\n",
			-peaks.Height/2, peaks.Width, peaks.Height, path)
		if err := os.WriteFile(c.SVG, []byte(svg), 0o644); err != nil {
			return err
		}
		printSuccess("wrote " + c.SVG)
	}

	if c.PNG != "" {
		f, err := os.Create(c.PNG)
		if err != nil {
			return err
		}
		if err := png.Encode(f, path.Rasterize(c.Width, c.Height)); err != nil {
			f.Close()
			return fmt.Errorf("encoding %s: %w", c.PNG, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		printSuccess("wrote " + c.PNG)
	}

	fmt.Println(infoBox(filepath.Base(c.Input), [][2]string{
		{"Levels", fmt.Sprint(len(levels))},
		{"Path points", fmt.Sprint(len(path.Segments))},
	}))

	return nil
}

type PlayCmd struct {
	Input string  `arg:"" type:"existingfile" help:"Clip to play."`
	Start float64 `help:"Start of the region, as a fraction of the clip." default:"0"`
	End   float64 `help:"End of the region, as a fraction of the clip." default:"1"`
}

func (c *PlayCmd) Run(_ *Globals) error {
	buf, err := load(c.Input)
	if err != nil {
		return err
	}

	sink := player.NewSpeakerSink()
	defer sink.Close()
	pl := player.New(sink)

	lo, hi := editor.NewTrim(c.Start, c.End).Bounds()
	model := newPlaybackModel(filepath.Base(c.Input),
		time.Duration(buf.Duration()*float64(time.Second)), lo, hi, pl.Stop)
	prog := tea.NewProgram(model)

	err = pl.Play(buf, lo, hi,
		func(pos float64) { prog.Send(playheadMsg(pos)) },
		func() { prog.Send(playbackEndedMsg{}) },
	)
	if err != nil {
		return err
	}

	if _, err := prog.Run(); err != nil {
		pl.Stop()
		return fmt.Errorf("running UI: %w", err)
	}

	return nil
}

type InfoCmd struct {
	Input string `arg:"" type:"existingfile" help:"Clip to inspect."`
}

func (c *InfoCmd) Run(_ *Globals) error {
	buf, err := load(c.Input)
	if err != nil {
		return err
	}

	gov := audio.DefaultGovernor()
	fits := "yes"
	if !gov.Fits(buf) {
		fits = fmt.Sprintf("no, would be resampled to %d Hz", gov.FallbackRate)
		if _, err := gov.Fit(buf); err != nil {
			fits = "no, too large to edit"
		}
	}

	names := make([]string, 0, len(effects.Kinds()))
	for _, k := range effects.Kinds() {
		names = append(names, k.String())
	}

	fmt.Println(infoBox(filepath.Base(c.Input), [][2]string{
		{"Format", soundedit.FormatOf(c.Input)},
		{"Sample rate", fmt.Sprintf("%d Hz", buf.SampleRate)},
		{"Samples", fmt.Sprint(buf.Len())},
		{"Duration", fmt.Sprintf("%.3fs", buf.Duration())},
		{"WAV size", formatBytes(buf.EncodedSize() + 44)},
		{"Fits limit", fits},
		{"Effects", strings.Join(names, ", ")},
	}))

	return nil
}

// kong variables for flag defaults
var defaults = map[string]string{
	"byte_limit":    fmt.Sprint(config.ByteLimit),
	"fallback_rate": fmt.Sprint(config.FallbackSampleRate),
	"chunk_size":    fmt.Sprint(config.ChunkSize),
}
