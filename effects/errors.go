// SPDX-License-Identifier: EPL-2.0

package effects

import "errors"

var (
	// ErrEffectSkipped is returned for buffers too short to render. Callers
	// treat it as a no-op rather than a failure.
	ErrEffectSkipped = errors.New("buffer too short for an effect, skipped")

	ErrUnknownKind = errors.New("unknown effect")
)
