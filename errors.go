// SPDX-License-Identifier: EPL-2.0

package soundedit

import "errors"

var (
	// ErrUnknownFormat is returned for format keys with no decoder or encoder.
	ErrUnknownFormat = errors.New("unknown audio format")
)
