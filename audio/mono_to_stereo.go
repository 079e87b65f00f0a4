// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/wavstereo/formats/wav"
)

// CheckCompatible reports ErrFormatMismatch when two mono inputs do not share
// sample rate and payload size.
func CheckCompatible(left, right wav.Header) error {
	if left.SampleRate != right.SampleRate || left.Subchunk2Size != right.Subchunk2Size {
		return fmt.Errorf("%w: left rate=%d size=%d, right rate=%d size=%d", ErrFormatMismatch,
			left.SampleRate, left.Subchunk2Size, right.SampleRate, right.Subchunk2Size)
	}

	return nil
}

// MonoToStereo interleaves two 16-bit mono buffers, left first. The output
// header is the left header with the stereo fields recomputed.
//
// Inputs that differ in rate or size are reported to the logger and the
// output is cut to the shorter input, unless the converter is strict.
func (c *Converter) MonoToStereo(left wav.Header, leftSamples []int16, right wav.Header, rightSamples []int16) (wav.Header, []int16, error) {
	if err := RequireMono16(left); err != nil {
		return wav.Header{}, nil, fmt.Errorf("left input: %w", err)
	}

	if err := RequireMono16(right); err != nil {
		return wav.Header{}, nil, fmt.Errorf("right input: %w", err)
	}

	if err := CheckCompatible(left, right); err != nil {
		if c.Strict {
			return wav.Header{}, nil, err
		}

		c.logger().Warn("mono inputs differ in duration or sample rate, output truncated to the shorter one",
			"left_rate", left.SampleRate, "right_rate", right.SampleRate,
			"left_size", left.Subchunk2Size, "right_size", right.Subchunk2Size)
	}

	frames := min(len(leftSamples), len(rightSamples))
	stereo := make([]int16, frames*2)

	for f := range frames {
		idx := f << 1
		stereo[idx] = leftSamples[f]
		stereo[idx+1] = rightSamples[f]
	}

	return left.Derive(2, left.BitsPerSample, uint32(len(stereo)*2)), stereo, nil
}
