// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files.
//
// Decoding goes through github.com/go-audio/wav and accepts integer PCM at
// 8, 16, 24 or 32 bits with any channel count:
//
//	src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
//
// Writing is always mono 16-bit PCM, the format the editor saves in:
//
//	data, err := wav.Encode(buf)
//
// Samples are converted with utils.ConvertToInt16, so full-scale positive
// input above 1.0 wraps the way existing saved files expect.
package wav
