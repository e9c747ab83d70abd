// SPDX-License-Identifier: EPL-2.0

// Package audio holds the sample-level building blocks shared by the editor:
// the streaming Source interface, the mono Buffer every edit works on, and
// the conversions between them.
//
// # Sources and buffers
//
// Decoders produce a Source, which may be interleaved multi-channel audio.
// ReadBuffer drains it into a mono Buffer, averaging channels on the way:
//
//	src, _ := wav.Decoder{}.Decode(r)
//	buf, err := audio.ReadBuffer(src)
//
// A Buffer goes back to streaming form through Buffer.Source, which is how the
// Resampler and the effects consume it.
//
// # Resampling
//
// The Resampler converts a Source to another rate with cubic interpolation
// and a one-pole low-pass when downsampling. NewRateChanger reuses it to play
// a Source faster or slower at its own rate.
//
// # Size governor
//
// Governor keeps a Buffer under the encoded byte ceiling. A buffer that is too
// large is resampled once to the fallback rate; when even that does not fit
// the edit is refused with ErrTooLarge. Offline contexts can only be built for
// rates inside ContextLimits, and a buffer that cannot be resampled may still
// be decimated when the fallback is exactly half its rate.
//
// # Sample format
//
// Samples are float32 in [-1.0, 1.0]. Buffers are never resized in place;
// every operation returns a new one.
package audio
