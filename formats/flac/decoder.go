// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"

	"github.com/ik5/soundedit/audio"
)

// block is one decoded FLAC frame, one slice of samples per channel.
type block struct {
	bitsPerSample int
	channels      [][]int32
}

// frameReader yields decoded frames, io.EOF after the last one.
type frameReader interface {
	next() (block, error)
	Close() error
}

type streamReader struct {
	stream *flac.Stream
}

func (s streamReader) next() (block, error) {
	f, err := s.stream.ParseNext()
	if err != nil {
		return block{}, err
	}

	b := block{
		bitsPerSample: int(f.BitsPerSample),
		channels:      make([][]int32, len(f.Subframes)),
	}
	for i, sub := range f.Subframes {
		b.channels[i] = sub.Samples
	}

	return b, nil
}

func (s streamReader) Close() error { return s.stream.Close() }

type source struct {
	frames     frameReader
	sampleRate int
	channels   int

	pending []float32
	done    bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 * s.channels }

func (s *source) Close() error {
	if err := s.frames.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// fill decodes the next frame into pending.
func (s *source) fill() error {
	b, err := s.frames.next()
	if errors.Is(err, io.EOF) {
		s.done = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("parsing flac frame: %w", err)
	}

	if len(b.channels) != s.channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, len(b.channels), s.channels)
	}
	if b.bitsPerSample < 4 || b.bitsPerSample > 32 {
		return fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, b.bitsPerSample)
	}

	scale := float32(int64(1) << (b.bitsPerSample - 1))
	frames := len(b.channels[0])

	s.pending = s.pending[:0]
	for i := range frames {
		for _, ch := range b.channels {
			var v int32
			if i < len(ch) {
				v = ch[i]
			}
			s.pending = append(s.pending, float32(v)/scale)
		}
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	n := 0
	for n < len(dst) {
		if len(s.pending) == 0 {
			if s.done {
				break
			}
			if err := s.fill(); err != nil {
				return n, err
			}
			continue
		}

		c := copy(dst[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if s.done && len(s.pending) == 0 {
		return n, io.EOF
	}

	return n, nil
}

// Decoder reads FLAC streams of 4 to 32 bits per sample.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		_ = stream.Close()
		return nil, ErrNotFlacFile
	}

	return &source{
		frames:     streamReader{stream: stream},
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
	}, nil
}
