// SPDX-License-Identifier: EPL-2.0

// Package aiff imports AIFF files for the channel transforms.
//
// This package uses github.com/go-audio/aiff to read the file and hands back
// a wav.File: a canonical WAV header plus a little-endian 16-bit payload.
// Big-endian AIFF samples are re-packed on the way.
//
// Only 16-bit PCM with one or two channels is accepted.
//
//	f, err := aiff.Decoder{}.Decode(file)
//	samples, err := f.Int16Samples()
package aiff
