// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/wavstereo/formats/wav"
	"github.com/ik5/wavstereo/utils"
)

// StereoToMono folds an interleaved 16-bit stereo buffer into one channel.
//
// Even indices are the left channel and odd indices the right one. A trailing
// sample without a partner is dropped in every mode. Sum and Diff halve with
// floor division, so (-3)/2 is -2. Their results always fit in 16 bits and
// are never clamped.
func StereoToMono(h wav.Header, samples []int16, mode Mode) (wav.Header, []int16, error) {
	if err := RequireStereo16(h); err != nil {
		return wav.Header{}, nil, err
	}

	frames := len(samples) / 2
	mono := make([]int16, frames)

	switch mode {
	case Left:
		for f := range frames {
			mono[f] = samples[f<<1]
		}
	case Right:
		for f := range frames {
			mono[f] = samples[f<<1+1]
		}
	case Sum:
		for f := range frames {
			l, r := int32(samples[f<<1]), int32(samples[f<<1+1])
			mono[f] = int16(utils.FloorDiv(l+r, 2))
		}
	case Diff:
		for f := range frames {
			l, r := int32(samples[f<<1]), int32(samples[f<<1+1])
			mono[f] = int16(utils.FloorDiv(l-r, 2))
		}
	default:
		return wav.Header{}, nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	return h.Derive(1, h.BitsPerSample, uint32(len(mono)*2)), mono, nil
}

// RequireStereo16 fails with ErrUnsupportedFormat unless h is 16-bit stereo.
func RequireStereo16(h wav.Header) error {
	return require(h, 2, 16)
}

// RequireMono16 fails with ErrUnsupportedFormat unless h is 16-bit mono.
func RequireMono16(h wav.Header) error {
	return require(h, 1, 16)
}

// RequirePacked32 fails with ErrUnsupportedFormat unless h is 32-bit mono,
// the layout of packed stereo words.
func RequirePacked32(h wav.Header) error {
	return require(h, 1, 32)
}

func require(h wav.Header, channels, bits uint16) error {
	if h.NumChannels != channels || h.BitsPerSample != bits {
		return fmt.Errorf("%w: need channels=%d bits=%d, got channels=%d bits=%d",
			ErrUnsupportedFormat, channels, bits, h.NumChannels, h.BitsPerSample)
	}

	return nil
}
