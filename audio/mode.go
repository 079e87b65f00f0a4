// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"
)

// Mode selects how StereoToMono folds the two channels into one.
type Mode int

const (
	// Left keeps the left channel.
	Left Mode = iota
	// Right keeps the right channel.
	Right
	// Sum is the floored half sum (L+R)/2.
	Sum
	// Diff is the floored half difference (L-R)/2.
	Diff
)

// DefaultMode is used when the caller does not pick one.
const DefaultMode = Sum

var modeNames = [...]string{
	Left:  "left",
	Right: "right",
	Sum:   "sum",
	Diff:  "diff",
}

func (m Mode) String() string {
	if m < Left || m > Diff {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode accepts the mode names as well as the numeric selectors 0-3.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for m, name := range modeNames {
		if s == name || s == fmt.Sprint(m) {
			return Mode(m), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
