// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// File is a fully materialised WAV file: the canonical header and the raw
// sample payload that follows it.
type File struct {
	Header  Header
	Payload []byte
}

// Int16Samples decodes the payload as signed 16-bit samples.
func (f *File) Int16Samples() ([]int16, error) {
	samples, err := DecodeInt16LE(f.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return samples, nil
}

// Uint32Samples decodes the payload as unsigned 32-bit words.
func (f *File) Uint32Samples() ([]uint32, error) {
	words, err := DecodeUint32LE(f.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return words, nil
}

// Decoder reads a whole WAV file into memory.
//
// Canonical files are taken as-is: the first 44 bytes are the header and
// everything after them is the payload. Files with a longer fmt chunk or
// extra chunks before the data are rewritten into the canonical layout.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	header, err := DecodeHeader(data)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	err = header.checkLayout()
	switch {
	case err == nil:
	case errors.Is(err, ErrUnsupportedWavLayout):
		return Normalize(bytes.NewReader(data))
	default:
		return nil, err
	}

	return &File{
		Header:  header,
		Payload: data[HeaderSize:],
	}, nil
}
