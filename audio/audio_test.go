// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/soundedit/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}

	if _, ok := registry.Get("flac"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{})
	registry.Register("aiff", &mockDecoder{})
	registry.Register("mp3", &mockDecoder{})

	got := registry.Formats()
	want := []string{"aiff", "mp3", "wav"}

	if len(got) != len(want) {
		t.Fatalf("Registry.Formats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Registry.Formats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", decoder)
			done <- true
		}()
		go func() {
			_, _ = registry.Get("format")
			done <- true
		}()
	}

	for range 20 {
		<-done
	}

	if _, ok := registry.Get("format"); !ok {
		t.Error("Registry.Get() failed after concurrent registration")
	}
}

func TestBuffer_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  Buffer
		want float64
	}{
		{name: "one second", buf: NewBuffer(make([]float32, 44100), 44100), want: 1},
		{name: "half second", buf: NewBuffer(make([]float32, 4000), 8000), want: 0.5},
		{name: "empty", buf: NewBuffer(nil, 8000), want: 0},
		{name: "no rate", buf: NewBuffer(make([]float32, 10), 0), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.buf.Duration(); got != tt.want {
				t.Errorf("Buffer.Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuffer_EncodedSize(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(make([]float32, 1234), 8000)
	if got := buf.EncodedSize(); got != 2468 {
		t.Errorf("Buffer.EncodedSize() = %d, want 2468", got)
	}
}

func TestBuffer_CloneIsDetached(t *testing.T) {
	t.Parallel()

	orig := NewBuffer([]float32{0.1, 0.2, 0.3}, 8000)
	clone := orig.Clone()
	clone.Samples[0] = 0.9

	if orig.Samples[0] != 0.1 {
		t.Errorf("Clone() shares memory: original changed to %v", orig.Samples[0])
	}
	if clone.SampleRate != orig.SampleRate {
		t.Errorf("Clone() SampleRate = %d, want %d", clone.SampleRate, orig.SampleRate)
	}
}

func TestBuffer_SourceRoundTrip(t *testing.T) {
	t.Parallel()

	orig := NewBuffer(audiotest.Ramp(10000), 16000)

	got, err := ReadBuffer(orig.Source())
	if err != nil {
		t.Fatalf("ReadBuffer() error = %v", err)
	}

	if got.SampleRate != 16000 || got.Len() != orig.Len() {
		t.Fatalf("ReadBuffer() = %d samples at %d Hz, want %d at 16000 Hz", got.Len(), got.SampleRate, orig.Len())
	}

	for i := range orig.Samples {
		if got.Samples[i] != orig.Samples[i] {
			t.Fatalf("ReadBuffer()[%d] = %v, want %v", i, got.Samples[i], orig.Samples[i])
		}
	}
}

func TestReadBuffer_Downmix(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 500, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.2
		}
		return 0.6
	})

	got, err := ReadBuffer(src)
	if err != nil {
		t.Fatalf("ReadBuffer() error = %v", err)
	}

	if got.Len() != 500 {
		t.Fatalf("ReadBuffer() len = %d, want 500", got.Len())
	}

	for i, s := range got.Samples {
		if s < 0.399 || s > 0.401 {
			t.Fatalf("ReadBuffer()[%d] = %v, want 0.4", i, s)
		}
	}
}

type failingSource struct{}

func (failingSource) SampleRate() int                  { return 8000 }
func (failingSource) Channels() int                    { return 1 }
func (failingSource) BufSize() int                     { return 16 }
func (failingSource) Close() error                     { return nil }
func (failingSource) ReadSamples([]float32) (int, error) { return 0, errors.New("device gone") }

func TestReadBuffer_Error(t *testing.T) {
	t.Parallel()

	if _, err := ReadBuffer(failingSource{}); err == nil {
		t.Error("ReadBuffer() error = nil, want error")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{})

	b.ReportAllocs()

	for range b.N {
		_, _ = registry.Get("wav")
	}
}
