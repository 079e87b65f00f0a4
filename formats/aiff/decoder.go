// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavstereo/formats/wav"
)

// readChunkSamples is how many samples are pulled from the AIFF decoder per call.
const readChunkSamples = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder imports a 16-bit AIFF file as a canonical WAV header and a
// little-endian payload, so the channel transforms can work on it.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*wav.File, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: got %d bits", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.NumChannels > 2 {
		return nil, ErrUnsupportedAiffLayout
	}

	return toWAV(dec)
}

// toWAV drains r and re-packs its samples into a WAV payload.
func toWAV(r aiffReader) (*wav.File, error) {
	format := r.Format()

	samples, err := readAll(r)
	if err != nil {
		return nil, err
	}

	payload := wav.EncodeInt16LE(samples)
	header := wav.NewHeader(uint32(format.SampleRate), uint16(format.NumChannels), 16, uint32(len(payload)))

	return &wav.File{Header: header, Payload: payload}, nil
}

func readAll(r aiffReader) ([]int16, error) {
	buf := &goaudio.IntBuffer{
		Data:           make([]int, readChunkSamples),
		Format:         r.Format(),
		SourceBitDepth: 16,
	}

	var samples []int16

	for {
		n, err := r.PCMBuffer(buf)
		for _, v := range buf.Data[:n] {
			if v > math.MaxInt16 || v < math.MinInt16 {
				return nil, fmt.Errorf("%w: sample %d out of 16-bit range", ErrUnsupportedAiffLayout, v)
			}
			samples = append(samples, int16(v))
		}

		if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
			return samples, nil
		}

		if err != nil {
			return nil, fmt.Errorf("reading aiff samples: %w", err)
		}
	}
}
