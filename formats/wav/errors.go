// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported     = errors.New("only linear PCM supported")
	// ErrInconsistentHeader is returned by Header.Validate when a derived field disagrees.
	ErrInconsistentHeader = errors.New("inconsistent WAV header")
	// ErrTruncatedInput means fewer bytes than the header or payload needs.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrMisalignedBuffer means the payload is not a whole number of samples.
	ErrMisalignedBuffer = errors.New("payload length not a multiple of sample width")
)
