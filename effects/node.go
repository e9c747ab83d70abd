// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"
	"slices"

	"github.com/ik5/soundedit/audio"
)

// Node is one processing stage of a Graph. Render must not modify in.
type Node interface {
	Render(in []float32, sampleRate int) ([]float32, error)
}

// Gain multiplies the signal by an automation timeline.
type Gain struct {
	Gain *Automation
}

func (g Gain) Render(in []float32, sampleRate int) ([]float32, error) {
	out := make([]float32, len(in))
	for i, v := range g.Gain.Values(len(in), sampleRate) {
		out[i] = in[i] * float32(v)
	}
	return out, nil
}

// EchoNode sums the dry signal with a feedback delay line. Send gates how much of
// the input enters the line at each moment.
type EchoNode struct {
	Delay    float64 // seconds
	Feedback float64
	Send     *Automation
}

func (e EchoNode) Render(in []float32, sampleRate int) ([]float32, error) {
	d := int(math.Round(e.Delay * float64(sampleRate)))
	if d < 1 {
		return nil, fmt.Errorf("echo delay of %d samples", d)
	}

	send := e.Send.Values(len(in), sampleRate)
	wet := make([]float32, len(in))
	out := make([]float32, len(in))

	fb := float32(e.Feedback)
	for i := range in {
		if i >= d {
			wet[i] = float32(send[i-d])*in[i-d] + fb*wet[i-d]
		}
		out[i] = in[i] + wet[i]
	}

	return out, nil
}

// Rate plays the frames in [Start, End) back Rate times faster and splices
// the result between the untouched head and tail.
type Rate struct {
	Start, End int
	Rate       float64
}

// RegionLength is the number of frames the region occupies after rendering.
func (r Rate) RegionLength() int {
	n := r.End - r.Start
	if n <= 0 {
		return 0
	}
	return int(float64(n-1)/r.Rate) + 1
}

func (r Rate) Render(in []float32, sampleRate int) ([]float32, error) {
	start, end := clampRegion(r.Start, r.End, len(in))
	if start == end {
		return slices.Clone(in), nil
	}

	region := audio.NewBuffer(in[start:end], sampleRate)
	changed, err := audio.ReadBuffer(audio.NewRateChanger(region.Source(), r.Rate))
	if err != nil {
		return nil, fmt.Errorf("changing rate: %w", err)
	}

	out := make([]float32, 0, start+changed.Len()+len(in)-end)
	out = append(out, in[:start]...)
	out = append(out, changed.Samples...)
	out = append(out, in[end:]...)

	return out, nil
}

// ReverseNode flips the order of the frames in [Start, End).
type ReverseNode struct {
	Start, End int
}

func (r ReverseNode) Render(in []float32, _ int) ([]float32, error) {
	out := slices.Clone(in)
	start, end := clampRegion(r.Start, r.End, len(in))
	slices.Reverse(out[start:end])
	return out, nil
}

// RingMod multiplies the frames in [Start, End) by a sine carrier.
type RingMod struct {
	Start, End int
	Frequency  float64
}

func (m RingMod) Render(in []float32, sampleRate int) ([]float32, error) {
	out := slices.Clone(in)
	start, end := clampRegion(m.Start, m.End, len(in))

	w := 2 * math.Pi * m.Frequency / float64(sampleRate)
	for i := start; i < end; i++ {
		out[i] *= float32(math.Sin(w * float64(i)))
	}

	return out, nil
}

func clampRegion(start, end, n int) (int, int) {
	start = max(0, min(start, n))
	end = max(start, min(end, n))
	return start, end
}
