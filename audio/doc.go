// SPDX-License-Identifier: EPL-2.0

// Package audio holds the in-memory channel transforms.
//
// Every transform takes the input's canonical WAV header and its decoded
// samples and returns a new header with the channel count, bit depth and
// payload size replaced. Sample rate and the tag fields are carried over and
// chunkSize, byteRate and blockAlign are recomputed.
//
// # Stereo to mono
//
//	h, mono, err := audio.StereoToMono(header, samples, audio.Sum)
//
// Left and Right copy one channel. Sum and Diff compute floor((L+R)/2) and
// floor((L-R)/2), which always fit in 16 bits.
//
// # Mono to stereo
//
//	c := &audio.Converter{Logger: logger}
//	h, stereo, err := c.MonoToStereo(leftHeader, left, rightHeader, right)
//
// Inputs that differ in sample rate or data size are logged as a warning and
// the output is cut to the shorter one. With Strict set the converter returns
// ErrFormatMismatch instead.
//
// # Packed 32-bit words
//
// EncodeMidSide32 stores the right sample in the high half of a word and the
// left sample in the low half. DecodeMidSide32 treats the high half as a
// semi-sum s and the low half as a semi-difference d and rebuilds
// L = clamp(s+d) and R = clamp(s-d). The two are not inverses.
//
// # Decoder registry
//
// Registry maps file extensions to decoders returning a *wav.File:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("WAV")
package audio
