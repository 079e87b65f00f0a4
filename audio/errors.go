// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedFormat means the header's channel count or bit depth is not
	// what the operation works on.
	ErrUnsupportedFormat = errors.New("unsupported channel layout or bit depth")
	// ErrFormatMismatch means two inputs that are combined disagree on sample
	// rate or payload length.
	ErrFormatMismatch = errors.New("input formats do not match")
	ErrUnknownMode    = errors.New("unknown stereo to mono mode")
)
