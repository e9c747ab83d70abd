// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// Signed integer PCM at 8, 16, 24 and 32 bits is supported, with any channel
// count. go-audio needs to seek, so input that is not an io.ReadSeeker is read
// into memory first.
//
//	src, err := aiff.Decoder{}.Decode(bytes.NewReader(data))
package aiff
