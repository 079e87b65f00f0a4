// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"log/slog"

	"github.com/ik5/wavstereo/formats/wav"
)

// Converter runs the channel transforms. The zero value is ready to use and
// logs through slog.Default.
type Converter struct {
	// Logger receives the mono to stereo mismatch warning.
	Logger *slog.Logger
	// Strict turns that warning into ErrFormatMismatch.
	Strict bool
}

func (c *Converter) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}

	return c.Logger
}

func (c *Converter) StereoToMono(h wav.Header, samples []int16, mode Mode) (wav.Header, []int16, error) {
	return StereoToMono(h, samples, mode)
}

func (c *Converter) EncodeMidSide32(h wav.Header, samples []int16) (wav.Header, []uint32, error) {
	return EncodeMidSide32(h, samples)
}

func (c *Converter) DecodeMidSide32(h wav.Header, words []uint32) (wav.Header, []int16, error) {
	return DecodeMidSide32(h, words)
}

var defaultConverter = &Converter{}

// MonoToStereo interleaves two mono buffers with the default converter.
func MonoToStereo(left wav.Header, leftSamples []int16, right wav.Header, rightSamples []int16) (wav.Header, []int16, error) {
	return defaultConverter.MonoToStereo(left, leftSamples, right, rightSamples)
}
