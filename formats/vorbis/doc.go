// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis with github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(bytes.NewReader(data))
//	buf, err := audio.ReadBuffer(src)
//
// Samples come out interleaved in [-1.0, 1.0], already float like the rest
// of the pipeline, so no conversion happens here.
package vorbis
