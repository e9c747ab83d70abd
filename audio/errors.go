// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrTooLarge is returned when a buffer exceeds the byte ceiling even at
	// the fallback sample rate.
	ErrTooLarge = errors.New("sound too large to save, refusing to edit")

	// ErrResampleUnsupported is returned when no offline context can render
	// the target rate and decimation does not apply.
	ErrResampleUnsupported = errors.New("could not resample")

	// ErrUnsupportedSampleRate is returned for offline contexts outside the
	// supported rate range.
	ErrUnsupportedSampleRate = errors.New("unsupported sample rate")

	// ErrContextTooShort is returned for offline contexts without frames.
	ErrContextTooShort = errors.New("offline context needs at least one frame")

	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
