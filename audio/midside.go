// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/wavstereo/formats/wav"
	"github.com/ik5/wavstereo/utils"
)

// PackPair stores hi in bits 31..16 and lo in bits 15..0, each as its
// two's-complement 16-bit pattern.
func PackPair(hi, lo int16) uint32 {
	return uint32(utils.Uint16Bits(hi))<<16 | uint32(utils.Uint16Bits(lo))
}

// UnpackPair splits a packed word back into its signed halves.
func UnpackPair(w uint32) (hi, lo int16) {
	return utils.Int16Bits(uint16(w >> 16)), utils.Int16Bits(uint16(w))
}

// EncodeMidSide32 packs every left/right frame of a 16-bit stereo buffer into
// one 32-bit word: the right sample in the high half, the left sample in the
// low half. The values are stored as they are, no sum or difference is taken.
// A trailing unpaired sample is dropped.
func EncodeMidSide32(h wav.Header, samples []int16) (wav.Header, []uint32, error) {
	if err := RequireStereo16(h); err != nil {
		return wav.Header{}, nil, err
	}

	frames := len(samples) / 2
	words := make([]uint32, frames)

	for f := range frames {
		idx := f << 1
		words[f] = PackPair(samples[idx+1], samples[idx])
	}

	return h.Derive(1, 32, uint32(len(words)*4)), words, nil
}

// DecodeMidSide32 reads each word as a semi-sum (high half) and a
// semi-difference (low half) and rebuilds L = sum+diff and R = sum-diff,
// saturating both to 16 bits.
//
// This is not the inverse of EncodeMidSide32, which stores raw L and R.
// Both keep their historical arithmetic.
func DecodeMidSide32(h wav.Header, words []uint32) (wav.Header, []int16, error) {
	if err := RequirePacked32(h); err != nil {
		return wav.Header{}, nil, err
	}

	stereo := make([]int16, len(words)*2)

	for i, w := range words {
		semiSum, semiDiff := UnpackPair(w)
		s, d := int32(semiSum), int32(semiDiff)

		idx := i << 1
		stereo[idx] = utils.ClampInt16(s + d)
		stereo[idx+1] = utils.ClampInt16(s - d)
	}

	return h.Derive(2, 16, uint32(len(words)*4)), stereo, nil
}
