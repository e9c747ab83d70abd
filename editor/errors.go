// SPDX-License-Identifier: EPL-2.0

package editor

import "errors"

var (
	// ErrBusy is returned when an edit arrives while another one is still
	// rendering. Nothing is queued.
	ErrBusy = errors.New("another edit is in progress")

	ErrNothingToPaste = errors.New("nothing has been copied")
	ErrNoPlayer       = errors.New("session has no player")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadCommand     = errors.New("malformed command")
)
