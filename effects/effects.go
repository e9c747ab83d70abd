// SPDX-License-Identifier: EPL-2.0

// Package effects renders the editor's effects offline. Each effect is built
// as a small Graph of nodes driven by automation timelines and evaluated
// sample by sample over an audio.OfflineContext.
package effects

import (
	"fmt"
	"math"

	"github.com/ik5/soundedit/audio"
	"github.com/ik5/soundedit/internal/config"
	"github.com/ik5/soundedit/internal/logging"
)

var logger = logging.NewLogger("soundedit/effects")

// Result is a rendered buffer with the trim fractions that cover the
// original selection in it. Length-changing effects move them, so callers
// must carry these forward instead of the values they passed in.
type Result struct {
	Buffer    audio.Buffer
	TrimStart float64
	TrimEnd   float64
}

// Renderer holds the effect parameters.
type Renderer struct {
	Limits audio.ContextLimits

	MuteRamp   float64 // seconds
	VolumeRamp float64 // seconds
	Softer     float64
	Louder     float64
	Faster     float64
	Slower     float64

	EchoDelay    float64 // seconds
	EchoFeedback float64
	EchoTail     float64 // seconds past the selection the echo may ring

	RobotFrequency float64 // Hz
}

func DefaultRenderer() Renderer {
	return Renderer{
		Limits:         audio.DefaultContextLimits(),
		MuteRamp:       config.MuteRampSeconds,
		VolumeRamp:     config.VolumeRampSeconds,
		Softer:         config.SofterVolume,
		Louder:         config.LouderVolume,
		Faster:         config.FasterRate,
		Slower:         config.SlowerRate,
		EchoDelay:      config.EchoDelaySeconds,
		EchoFeedback:   config.EchoFeedback,
		EchoTail:       config.EchoTailSeconds,
		RobotFrequency: config.RobotFrequency,
	}
}

// Process renders kind over DefaultRenderer.
func Process(buf audio.Buffer, kind Kind, trimStart, trimEnd float64) (Result, error) {
	return DefaultRenderer().Process(buf, kind, trimStart, trimEnd)
}

// plan is the graph for one request plus where the selection ends up.
type plan struct {
	graph    Graph
	length   int     // frames of the rendered buffer
	startSec float64 // selection in the rendered buffer
	endSec   float64
}

// Process renders kind over the [trimStart, trimEnd] fraction of buf. The
// pair may be given in either order and is clamped to [0, 1]. Buffers with
// fewer than two samples return ErrEffectSkipped.
func (r Renderer) Process(buf audio.Buffer, kind Kind, trimStart, trimEnd float64) (Result, error) {
	if buf.Len() < config.MinEffectSamples {
		return Result{}, ErrEffectSkipped
	}

	lo, hi := canonical(trimStart, trimEnd)
	dur := buf.Duration()
	startSec, endSec := lo*dur, hi*dur

	p, err := r.plan(buf, kind, startSec, endSec)
	if err != nil {
		return Result{}, err
	}

	ctx, err := r.Limits.NewContext(p.length, buf.SampleRate)
	if err != nil {
		return Result{}, fmt.Errorf("rendering %s: %w", kind, err)
	}

	logger.Debugf("rendering %s over %.3f-%.3f s into %d frames", kind, startSec, endSec, ctx.Length)

	out, err := p.graph.Render(ctx, buf.Samples)
	if err != nil {
		return Result{}, fmt.Errorf("rendering %s: %w", kind, err)
	}

	newDur := ctx.Duration()

	return Result{
		Buffer:    out,
		TrimStart: clamp01(p.startSec / newDur),
		TrimEnd:   clamp01(p.endSec / newDur),
	}, nil
}

func (r Renderer) plan(buf audio.Buffer, kind Kind, start, end float64) (plan, error) {
	rate := buf.SampleRate
	p := plan{length: buf.Len(), startSec: start, endSec: end}

	frames := audio.OfflineContext{Length: buf.Len(), SampleRate: rate}
	startIdx, endIdx := frames.Frame(start), frames.Frame(end)

	switch kind {
	case FadeIn:
		g := NewAutomation(1).
			SetValueAtTime(0, start).
			LinearRampToValueAtTime(1, end).
			SetValueAtTime(1, end)
		p.graph.Nodes = []Node{Gain{Gain: g}}

	case FadeOut:
		g := NewAutomation(1).
			SetValueAtTime(1, start).
			LinearRampToValueAtTime(0, end).
			SetValueAtTime(1, end)
		p.graph.Nodes = []Node{Gain{Gain: g}}

	case Mute:
		g := NewAutomation(1).
			SetValueAtTime(1, math.Max(0, start-r.MuteRamp)).
			LinearRampToValueAtTime(0, start).
			SetValueAtTime(0, end).
			LinearRampToValueAtTime(1, end+r.MuteRamp)
		p.graph.Nodes = []Node{Gain{Gain: g}}

	case Softer, Louder:
		volume := r.Softer
		if kind == Louder {
			volume = r.Louder
		}
		g := NewAutomation(1).
			SetValueAtTime(1, math.Max(0, start-r.VolumeRamp)).
			ExponentialRampToValueAtTime(volume, start).
			SetValueAtTime(volume, end).
			ExponentialRampToValueAtTime(1, end+r.VolumeRamp)
		p.graph.Nodes = []Node{Gain{Gain: g}}

	case Faster, Slower:
		speed := r.Faster
		if kind == Slower {
			speed = r.Slower
		}
		node := Rate{Start: startIdx, End: endIdx, Rate: speed}
		region := node.RegionLength()

		p.graph.Nodes = []Node{node}
		p.length = buf.Len() - (endIdx - startIdx) + region
		p.startSec = float64(startIdx) / float64(rate)
		p.endSec = float64(startIdx+region) / float64(rate)

	case Echo:
		send := NewAutomation(0).
			SetValueAtTime(1, start).
			SetValueAtTime(0, end)
		p.graph.Nodes = []Node{EchoNode{Delay: r.EchoDelay, Feedback: r.EchoFeedback, Send: send}}
		p.length = max(buf.Len(), int((end+r.EchoTail)*float64(rate)))

	case Reverse:
		p.graph.Nodes = []Node{ReverseNode{Start: startIdx, End: endIdx}}

	case Robot:
		p.graph.Nodes = []Node{RingMod{Start: startIdx, End: endIdx, Frequency: r.RobotFrequency}}

	default:
		return plan{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	return p, nil
}

func canonical(a, b float64) (float64, float64) {
	a, b = clamp01(a), clamp01(b)
	return math.Min(a, b), math.Max(a, b)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
