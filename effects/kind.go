// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"strings"
)

// Kind selects the effect to render.
type Kind int

const (
	FadeIn Kind = iota
	FadeOut
	Mute
	Softer
	Louder
	Faster
	Slower
	Echo
	Reverse
	Robot
)

var kindNames = [...]string{
	FadeIn:  "fade-in",
	FadeOut: "fade-out",
	Mute:    "mute",
	Softer:  "softer",
	Louder:  "louder",
	Faster:  "faster",
	Slower:  "slower",
	Echo:    "echo",
	Reverse: "reverse",
	Robot:   "robot",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every effect in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind maps a name such as "fade-out" to its Kind. Underscores and case
// are ignored, so "FADE_OUT" works too.
func ParseKind(name string) (Kind, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if n == "fadein" || n == "fadeout" {
		n = n[:4] + "-" + n[4:]
	}

	for i, s := range kindNames {
		if s == n {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
