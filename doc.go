// SPDX-License-Identifier: EPL-2.0

// Package wavstereo converts 16-bit PCM WAV files between channel layouts.
//
// Four conversions are available, each reading whole files and writing a new
// canonical 44-byte WAV file:
//
//   - StereoToMonoFile folds a stereo file into one channel (left, right,
//     floor average or floor half difference).
//   - MonoToStereoFile interleaves two mono files, left first.
//   - EncodeMidSide32File packs each stereo frame into one 32-bit word, right
//     sample in the high half and left sample in the low half.
//   - DecodeMidSide32File reads the high half of each word as the semi-sum and
//     the low half as the semi-difference and rebuilds clamped L/R samples.
//
// # Inputs
//
// Canonical WAV files are read byte for byte. WAV files with an extended fmt
// chunk or extra chunks before the data are normalised first. 16-bit AIFF
// files are accepted and converted to WAV on load.
//
//	if err := wavstereo.StereoToMonoFile("in.wav", "out.wav", audio.Sum); err != nil {
//		log.Fatal(err)
//	}
//
// # Mismatched mono inputs
//
// When the two inputs of MonoToStereoFile differ in sample rate or length, a
// warning is logged and the output stops at the shorter input. A Runner built
// with strict set fails with audio.ErrFormatMismatch instead:
//
//	r := wavstereo.NewRunner(slog.Default(), true)
//	err := r.MonoToStereoFile("l.wav", "r.wav", "out.wav")
//
// The in-memory transforms live in the audio subpackage and the header and
// sample codecs in formats/wav.
package wavstereo
