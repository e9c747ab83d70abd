// SPDX-License-Identifier: EPL-2.0

package player

import "errors"

var (
	// ErrNotPlaying is returned internally when stop finds nothing playing.
	// Stop swallows it.
	ErrNotPlaying = errors.New("nothing is playing")

	ErrEmptyRegion = errors.New("trimmed region has no samples")
)
