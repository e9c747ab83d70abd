// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 with github.com/hajimehoshi/go-mp3 and encodes it
// with github.com/braheezy/shine-mp3.
//
// The decoder always yields interleaved stereo as float32 in [-1.0, 1.0].
// audio.ReadBuffer folds it down to the mono buffer the editor works on:
//
//	src, err := mp3.Decoder{}.Decode(bytes.NewReader(data))
//	buf, err := audio.ReadBuffer(src)
//
// The encoder converts the buffer to 16-bit PCM, feeds it to the codec in
// blocks of 1152 samples at a constant 128 kbps and concatenates the output:
//
//	data, err := mp3.Encode(buf)
//
// The codec sits behind the BlockEncoder interface, so tests and other
// callers can swap it out.
package mp3
