// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
	gowav "github.com/go-audio/wav"
)

// Normalize reads a PCM WAV file whose layout is not the canonical 44-byte one
// (extended fmt chunk, LIST/fact chunks before the data) and returns it with a
// freshly built canonical header. The payload bytes are copied untouched.
func Normalize(rs io.ReadSeeker) (*File, error) {
	dec := gowav.NewDecoder(rs)

	dec.ReadInfo()
	if err := dec.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.NumChans == 0 {
		return nil, fmt.Errorf("%w: no fmt chunk", ErrUnsupportedWavLayout)
	}

	if dec.WavAudioFormat != pcmFormat {
		return nil, fmt.Errorf("%w: audio format %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	payload, err := readDataChunk(rs)
	if err != nil {
		return nil, err
	}

	return &File{
		Header:  NewHeader(dec.SampleRate, dec.NumChans, dec.BitDepth, uint32(len(payload))),
		Payload: payload,
	}, nil
}

// readDataChunk walks the RIFF chunks from the start of rs and returns the
// body of the first data chunk. The size is the one declared in the chunk
// header, so the pad byte after an odd-sized body is not part of it.
func readDataChunk(rs io.ReadSeeker) ([]byte, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek back to the start: %w", err)
	}

	parser := riff.New(rs)
	if err := parser.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	for {
		id, size, err := parser.IDnSize()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: no data chunk", ErrUnsupportedWavLayout)
			}

			return nil, fmt.Errorf("error reading chunk header: %w", err)
		}

		if id != riff.DataFormatID {
			if _, err := rs.Seek(int64(size)+int64(size%2), io.SeekCurrent); err != nil {
				return nil, fmt.Errorf("failed to skip %s chunk: %w", id[:], err)
			}

			continue
		}

		// a data chunk cut short by the end of the file keeps what is there
		payload, err := io.ReadAll(io.LimitReader(rs, int64(size)))
		if err != nil {
			return nil, fmt.Errorf("failed to read PCM data: %w", err)
		}

		return payload, nil
	}
}
