// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"

	"github.com/ik5/soundedit/audio"
)

// Graph wires input through Nodes in order to the output.
type Graph struct {
	Nodes []Node
}

// Render runs in through the graph and captures exactly ctx.Length frames.
// The input is zero-padded to the context length first so delay tails have
// room to ring out; longer output is truncated.
func (g Graph) Render(ctx audio.OfflineContext, in []float32) (audio.Buffer, error) {
	signal := make([]float32, max(len(in), ctx.Length))
	copy(signal, in)

	for i, n := range g.Nodes {
		out, err := n.Render(signal, ctx.SampleRate)
		if err != nil {
			return audio.Buffer{}, fmt.Errorf("node %d: %w", i, err)
		}
		signal = out
	}

	samples := make([]float32, ctx.Length)
	copy(samples, signal)

	return audio.NewBuffer(samples, ctx.SampleRate), nil
}
