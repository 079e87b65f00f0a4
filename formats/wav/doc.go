// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes linear PCM WAV files laid out with the
// canonical 44-byte header.
//
// # Header
//
// Header mirrors the 44 bytes on disk field by field. DecodeHeader and
// Header.Encode are a structural pair: neither looks at the tags or checks
// the derived fields, so any 44 bytes survive a round trip unchanged.
// Header.Validate performs those checks when a caller wants them.
//
// Header.Derive is the only way a transform should produce a new header. It
// keeps the sample rate and the ID tags and recomputes chunkSize, byteRate
// and blockAlign from the new channel count, bit depth and payload size:
//
//	chunkSize  = 36 + subchunk2Size
//	byteRate   = sampleRate * numChannels * bitsPerSample / 8
//	blockAlign = numChannels * bitsPerSample / 8
//
// # Samples
//
// DecodeInt16LE/EncodeInt16LE and DecodeUint32LE/EncodeUint32LE convert
// between payload bytes and sample slices. Payloads that are not a whole
// number of samples fail with ErrMisalignedBuffer.
//
// # Reading Files
//
// Decoder loads the whole file. Canonical files are split at byte 44 with no
// further interpretation. Files with an extended fmt chunk or chunks between
// fmt and data are passed through Normalize, which uses
// github.com/go-audio/wav for the format and github.com/go-audio/riff to pull
// the data chunk out untouched.
//
//	f, err := wav.Decoder{}.Decode(file)
//	samples, err := f.Int16Samples()
//
// # Writing Files
//
// Write emits a header followed by a payload. File.WriteTo does the same for
// a loaded or converted file.
//
// # Error Handling
//
// All errors are sentinels that can be matched with errors.Is:
//   - ErrTruncatedInput: fewer than 44 bytes
//   - ErrMisalignedBuffer: payload not a multiple of the sample width
//   - ErrNotWavFile: missing RIFF/WAVE tags
//   - ErrUnsupportedWavLayout: no usable fmt or data chunk
//   - ErrOnlyPCMSupported: audio format other than linear PCM
//   - ErrInconsistentHeader: derived field mismatch found by Validate
package wav
