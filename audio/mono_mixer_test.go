// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/soundedit/internal/audiotest"
)

func TestMonoMixer_Average(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		value    func(channel int) float32
		want     float32
	}{
		{name: "mono", channels: 1, value: func(int) float32 { return 0.5 }, want: 0.5},
		{
			name:     "stereo",
			channels: 2,
			value: func(c int) float32 {
				if c == 0 {
					return 0.4
				}
				return 0.6
			},
			want: 0.5,
		},
		{name: "quad", channels: 4, value: func(c int) float32 { return float32(c) * 0.1 }, want: 0.15},
		{name: "surround", channels: 6, value: func(c int) float32 { return float32(c%2) - 0.5 }, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 100, func(_, channel int) float32 {
				return tt.value(channel)
			})
			mixer := NewMonoMixer(src)

			if mixer.Channels() != 1 {
				t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
			}

			buf := make([]float32, 10)
			n, err := mixer.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 10 {
				t.Fatalf("ReadSamples() n = %d, want 10", n)
			}

			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 0.001 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 5))

	n, err := mixer.ReadSamples(make([]float32, 10))
	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	n, err = mixer.ReadSamples(make([]float32, 10))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 100))

	n, err := mixer.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_GrowsScratch(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewConstantSource(8000, 8, 20000, 0.25))

	buf := make([]float32, 10000)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10000 {
		t.Errorf("ReadSamples() n = %d, want 10000", n)
	}
	if buf[n-1] != 0.25 {
		t.Errorf("last sample = %v, want 0.25", buf[n-1])
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 1000)
	mixer := NewMonoMixer(src)

	if err := mixer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

func TestMonoMixer_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	mixer := NewMonoMixer(audiotest.NewSineSource(8000, 2, 1000000, 440.0))
	buf := make([]float32, 1024)

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = mixer.ReadSamples(buf)
	})

	if allocs > 0 {
		t.Errorf("ReadSamples() allocated %.1f times per call, want 0", allocs)
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for range b.N {
		mixer := NewMonoMixer(audiotest.NewSineSource(8000, 2, 100000, 440.0))
		for {
			_, err := mixer.ReadSamples(buf)
			if err != nil {
				break
			}
		}
	}
}
