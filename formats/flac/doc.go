// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams with github.com/mewkiz/flac.
//
// Frames are parsed one at a time and their subframes interleaved, so the
// source can be chained into the resampler and mono mixer like any other:
//
//	src, err := flac.Decoder{}.Decode(f)
package flac
