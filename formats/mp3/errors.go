// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	ErrUnsupportedSampleRate = errors.New("sample rate not supported by the MP3 encoder")
	ErrInvalidBlockSize      = errors.New("MP3 block size must be positive")
)
