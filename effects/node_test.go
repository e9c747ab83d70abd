// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/soundedit/audio"
	"github.com/ik5/soundedit/internal/audiotest"
)

func TestGain_Render(t *testing.T) {
	t.Parallel()

	in := audiotest.Constant(4, 0.5)
	out, err := Gain{Gain: NewAutomation(2)}.Render(in, 4)
	require.NoError(t, err)

	assert.Equal(t, []float32{1, 1, 1, 1}, out)
	assert.Equal(t, float32(0.5), in[0], "input must not be modified")
}

func TestEchoNode_Render(t *testing.T) {
	t.Parallel()

	in := make([]float32, 10)
	in[0] = 1

	out, err := EchoNode{Delay: 0.5, Feedback: 0.5, Send: NewAutomation(1)}.Render(in, 6)
	require.NoError(t, err)

	// Three sample delay at 6 Hz; each repeat is half the previous one.
	want := []float32{1, 0, 0, 1, 0, 0, 0.5, 0, 0, 0.25}
	assert.InDeltaSlice(t, want, out, 1e-6)

	_, err = EchoNode{Delay: 0, Send: NewAutomation(1)}.Render(in, 6)
	assert.Error(t, err)
}

func TestEchoNode_SendGated(t *testing.T) {
	t.Parallel()

	in := audiotest.Constant(8, 1)
	send := NewAutomation(0).SetValueAtTime(1, 0.5).SetValueAtTime(0, 0.75)

	out, err := EchoNode{Delay: 0.25, Feedback: 0, Send: send}.Render(in, 8)
	require.NoError(t, err)

	// Only frames 4 and 5 enter the line and come back two frames later.
	assert.Equal(t, []float32{1, 1, 1, 1, 1, 1, 2, 2}, out)
}

func TestRate_Render(t *testing.T) {
	t.Parallel()

	in := audiotest.Ramp(1000)
	node := Rate{Start: 200, End: 600, Rate: 2}

	out, err := node.Render(in, 8000)
	require.NoError(t, err)

	assert.Equal(t, 200, node.RegionLength())
	assert.Len(t, out, 800)
	assert.Equal(t, in[:200], out[:200], "head untouched")
	assert.Equal(t, in[600:], out[400:], "tail untouched")
}

func TestRate_EmptyRegion(t *testing.T) {
	t.Parallel()

	in := audiotest.Ramp(10)
	out, err := Rate{Start: 5, End: 5, Rate: 1.25}.Render(in, 8000)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, 0, Rate{Start: 5, End: 5, Rate: 1.25}.RegionLength())
}

func TestReverseNode_Render(t *testing.T) {
	t.Parallel()

	out, err := ReverseNode{Start: 1, End: 4}.Render([]float32{0, 1, 2, 3, 4}, 8000)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 3, 2, 1, 4}, out)

	out, err = ReverseNode{Start: 3, End: 99}.Render([]float32{0, 1, 2, 3, 4}, 8000)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2, 4, 3}, out)
}

func TestRingMod_Render(t *testing.T) {
	t.Parallel()

	in := audiotest.Constant(100, 1)
	out, err := RingMod{Start: 10, End: 20, Frequency: 50}.Render(in, 1000)
	require.NoError(t, err)

	assert.Equal(t, in[:10], out[:10])
	assert.Equal(t, in[20:], out[20:])
	assert.NotEqual(t, in[10:20], out[10:20])

	again, err := RingMod{Start: 10, End: 20, Frequency: 50}.Render(in, 1000)
	require.NoError(t, err)
	assert.Equal(t, out, again, "ring modulation is deterministic")
}

func TestGraph_RenderFitsContext(t *testing.T) {
	t.Parallel()

	g := Graph{Nodes: []Node{Gain{Gain: NewAutomation(1)}}}

	out, err := g.Render(audio.OfflineContext{Length: 6, SampleRate: 8000}, []float32{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, 1, 1, 0, 0}, out.Samples)

	out, err = g.Render(audio.OfflineContext{Length: 2, SampleRate: 8000}, []float32{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1}, out.Samples)
	assert.Equal(t, 8000, out.SampleRate)
}
