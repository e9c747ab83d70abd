// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"slices"

	shine "github.com/braheezy/shine-mp3/pkg/mp3"

	"github.com/ik5/soundedit/audio"
	"github.com/ik5/soundedit/internal/config"
	"github.com/ik5/soundedit/internal/logging"
	"github.com/ik5/soundedit/utils"
)

var logger = logging.NewLogger("soundedit/mp3")

// BlockEncoder is a constant bitrate MP3 codec fed one block at a time.
type BlockEncoder interface {
	// EncodeBlock encodes one full block of mono samples. The returned bytes
	// may be empty when the codec is still buffering.
	EncodeBlock(block []int16) ([]byte, error)
	// Flush returns whatever the codec still holds.
	Flush() ([]byte, error)
}

// Encoder splits a buffer into fixed blocks and concatenates what its codec
// returns for each of them.
type Encoder struct {
	BlockSize int
	NewCodec  func(sampleRate int) (BlockEncoder, error)
}

// NewEncoder returns the 1152-sample block encoder backed by shine.
func NewEncoder() Encoder {
	return Encoder{BlockSize: config.MP3BlockSize, NewCodec: NewShineCodec}
}

// Encode returns buf as mono MP3 using NewEncoder.
func Encode(buf audio.Buffer) ([]byte, error) {
	return NewEncoder().Encode(buf)
}

// Encode converts buf to 16-bit PCM and feeds it to a fresh codec block by
// block. The final partial block is zero-padded before the codec is flushed.
func (e Encoder) Encode(buf audio.Buffer) ([]byte, error) {
	if e.BlockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}

	codec, err := e.NewCodec(buf.SampleRate)
	if err != nil {
		return nil, err
	}

	pcm := utils.ConvertToInt16(buf.Samples)
	out := make([]byte, 0, buf.Len()/8)

	block := make([]int16, e.BlockSize)
	for i := 0; i < len(pcm); i += e.BlockSize {
		n := copy(block, pcm[i:])
		clear(block[n:])

		b, err := codec.EncodeBlock(block)
		if err != nil {
			return nil, fmt.Errorf("encoding block %d: %w", i/e.BlockSize, err)
		}
		out = append(out, b...)
	}

	tail, err := codec.Flush()
	if err != nil {
		return nil, fmt.Errorf("flushing encoder: %w", err)
	}
	out = append(out, tail...)

	logger.Debugf("encoded %d samples at %d Hz into %d bytes", len(pcm), buf.SampleRate, len(out))

	return out, nil
}

// Rates shine can encode: MPEG-1, MPEG-2 and MPEG-2.5 layer III.
var shineRates = []int{8000, 11025, 12000, 16000, 22050, 24000, 32000, 44100, 48000}

type shineCodec struct {
	enc *shine.Encoder
	out bytes.Buffer
}

// NewShineCodec returns a mono BlockEncoder at the codec's default 128 kbps.
func NewShineCodec(sampleRate int) (BlockEncoder, error) {
	if !slices.Contains(shineRates, sampleRate) {
		return nil, fmt.Errorf("%w: %d Hz", ErrUnsupportedSampleRate, sampleRate)
	}

	return &shineCodec{enc: shine.NewEncoder(sampleRate, 1)}, nil
}

func (c *shineCodec) EncodeBlock(block []int16) ([]byte, error) {
	c.out.Reset()
	if err := c.enc.Write(&c.out, block); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return bytes.Clone(c.out.Bytes()), nil
}

// shine writes whole frames as it goes and keeps nothing back.
func (c *shineCodec) Flush() ([]byte, error) { return nil, nil }
