// SPDX-License-Identifier: EPL-2.0

// Package soundedit is the byte boundary of the editor: it turns the encoded
// files a host hands over into mono sample buffers, and buffers back into
// WAV or MP3 payloads.
//
// # Supported Formats
//
// Decoding:
//   - WAV (integer PCM, 8 to 32 bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//   - FLAC via formats/flac
//
// Encoding is limited to 16-bit mono WAV and 128 kbps MP3.
//
// # Quick Start
//
//	data, _ := os.ReadFile("clip.ogg")
//	buf, err := soundedit.Decode(data, "ogg")
//	if err != nil {
//		return err
//	}
//
//	res, err := effects.Process(buf, effects.Echo, 0.25, 0.75)
//	if err != nil {
//		return err
//	}
//
//	out, err := soundedit.Encode(res.Buffer, "wav")
//
// Sub-packages do the work: audio holds buffers, the resampler and the size
// governor, effects renders the offline effect graphs, editor keeps the
// edit state and peaks draws the waveform.
package soundedit
