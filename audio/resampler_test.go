// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/soundedit/internal/audiotest"
)

// drain reads src to the end with reads of size samples.
func drain(t testing.TB, src Source, size int) []float32 {
	t.Helper()

	buf := make([]float32, size)
	var out []float32

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if n == 0 {
			return out
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 2, 1000), 16000)

	if r.SampleRate() != 16000 {
		t.Errorf("Resampler.SampleRate() = %d, want 16000", r.SampleRate())
	}
	if r.Channels() != 2 {
		t.Errorf("Resampler.Channels() = %d, want 2", r.Channels())
	}
}

func TestResampler_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
		frames  int
		want    int
	}{
		{name: "same rate", srcRate: 8000, dstRate: 8000, frames: 100, want: 100},
		{name: "halve", srcRate: 44100, dstRate: 22050, frames: 44100, want: 22050},
		{name: "double", srcRate: 8000, dstRate: 16000, frames: 8000, want: 15999},
		{name: "44.1k to 16k", srcRate: 44100, dstRate: 16000, frames: 44100, want: 16000},
		{name: "single frame", srcRate: 44100, dstRate: 8000, frames: 1, want: 1},
		{name: "empty", srcRate: 44100, dstRate: 8000, frames: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(tt.srcRate, 1, tt.frames, func(int, int) float32 { return 0.25 })
			got := drain(t, NewResampler(src, tt.dstRate), 1000)

			if len(got) != tt.want {
				t.Errorf("resampled length = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestResampler_ConstantSignal(t *testing.T) {
	t.Parallel()

	for _, dst := range []int{8000, 22050, 48000} {
		src := audiotest.NewConstantSource(44100, 1, 4410, 0.5)
		got := drain(t, NewResampler(src, dst), 512)

		for i, s := range got {
			if math.Abs(float64(s)-0.5) > 1e-5 {
				t.Fatalf("%d Hz: sample %d = %v, want 0.5", dst, i, s)
			}
		}
	}
}

func TestResampler_KeepsFirstSample(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 1, 100, func(sample, _ int) float32 {
		return float32(sample) / 100
	})
	got := drain(t, NewResampler(src, 16000), 64)

	if got[0] != 0 {
		t.Errorf("first sample = %v, want 0", got[0])
	}
	// Away from the edges a linear ramp interpolates exactly.
	if math.Abs(float64(got[21])-0.105) > 1e-5 {
		t.Errorf("sample 21 = %v, want 0.105", got[21])
	}
}

func TestResampler_StereoPreserved(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(44100, 2, 1000, func(_, channel int) float32 {
		if channel == 0 {
			return -0.5
		}
		return 0.5
	})
	got := drain(t, NewResampler(src, 16000), 256)

	if len(got)%2 != 0 {
		t.Fatalf("stereo output has odd length %d", len(got))
	}

	for i := 0; i < len(got); i += 2 {
		if got[i] >= 0 || got[i+1] <= 0 {
			t.Fatalf("frame %d = (%v, %v), channels mixed", i/2, got[i], got[i+1])
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 2, 1000), 16000)

	_, err := r.ReadSamples(make([]float32, 3))
	if !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_InvalidRate(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 1, 10), 0)

	_, err := r.ReadSamples(make([]float32, 4))
	if !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestResampler_EOFIsSticky(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 1, 100), 8000)
	_ = drain(t, r, 64)

	n, err := r.ReadSamples(make([]float32, 64))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestResampler_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 1000)
	r := NewResampler(src, 16000)

	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

func TestRateChanger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rate float64
		want int
	}{
		{name: "faster", rate: 1.25, want: 800},
		{name: "slower", rate: 0.75, want: 1333},
		{name: "unchanged", rate: 1, want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewRateChanger(audiotest.NewSilentSource(8000, 1, 1000), tt.rate)
			if r.SampleRate() != 8000 {
				t.Errorf("SampleRate() = %d, want 8000", r.SampleRate())
			}

			if got := len(drain(t, r, 300)); got != tt.want {
				t.Errorf("length = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResampleBuffer(t *testing.T) {
	t.Parallel()

	b := NewBuffer(audiotest.Constant(44100, 0.5), 44100)

	same, err := ResampleBuffer(b, 44100)
	if err != nil {
		t.Fatalf("ResampleBuffer() error = %v", err)
	}
	same.Samples[0] = 0
	if b.Samples[0] != 0.5 {
		t.Error("ResampleBuffer() at the same rate shares memory with its input")
	}

	half, err := ResampleBuffer(b, 22050)
	if err != nil {
		t.Fatalf("ResampleBuffer() error = %v", err)
	}
	if half.SampleRate != 22050 || half.Len() != 22050 {
		t.Errorf("ResampleBuffer() = %d samples at %d Hz, want 22050 at 22050 Hz", half.Len(), half.SampleRate)
	}

	if _, err := ResampleBuffer(b, -1); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("ResampleBuffer(-1) error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestResampler_MinimalAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	r := NewResampler(audiotest.NewSineSource(44100, 2, 1000000, 440.0), 16000)
	buf := make([]float32, 2048)

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = r.ReadSamples(buf)
	})

	if allocs > 0 {
		t.Errorf("ReadSamples() allocated %.1f times per call, want 0", allocs)
	}
}

func BenchmarkResampler_Downsample(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for range b.N {
		r := NewResampler(audiotest.NewSineSource(44100, 2, 100000, 440.0), 16000)
		for {
			_, err := r.ReadSamples(buf)
			if err != nil {
				break
			}
		}
	}
}

func BenchmarkResampler_Upsample(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for range b.N {
		r := NewResampler(audiotest.NewSineSource(8000, 2, 20000, 440.0), 44100)
		for {
			_, err := r.ReadSamples(buf)
			if err != nil {
				break
			}
		}
	}
}
