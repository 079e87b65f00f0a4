// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the size of the canonical RIFF/WAVE PCM header.
const HeaderSize = 44

const (
	pcmFmtChunkSize = 16
	pcmFormat       = 1
	// bytes counted by chunkSize that precede the payload
	riffOverhead = HeaderSize - 8
)

var (
	riffID = [4]byte{'R', 'I', 'F', 'F'}
	waveID = [4]byte{'W', 'A', 'V', 'E'}
	fmtID  = [4]byte{'f', 'm', 't', ' '}
	dataID = [4]byte{'d', 'a', 't', 'a'}
)

// Header is the canonical 44-byte WAVE header. All integers are little-endian on disk.
type Header struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte
	Subchunk2Size uint32
}

// NewHeader builds a PCM header with every derived field consistent.
func NewHeader(sampleRate uint32, numChannels, bitsPerSample uint16, dataSize uint32) Header {
	h := Header{
		ChunkID:       riffID,
		Format:        waveID,
		Subchunk1ID:   fmtID,
		Subchunk1Size: pcmFmtChunkSize,
		AudioFormat:   pcmFormat,
		SampleRate:    sampleRate,
		Subchunk2ID:   dataID,
	}

	return h.Derive(numChannels, bitsPerSample, dataSize)
}

// DecodeHeader unpacks the fixed layout. Tags and invariants are not checked.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncatedInput, HeaderSize, len(b))
	}

	var h Header

	copy(h.ChunkID[:], b[0:4])
	h.ChunkSize = binary.LittleEndian.Uint32(b[4:8])
	copy(h.Format[:], b[8:12])

	copy(h.Subchunk1ID[:], b[12:16])
	h.Subchunk1Size = binary.LittleEndian.Uint32(b[16:20])
	h.AudioFormat = binary.LittleEndian.Uint16(b[20:22])
	h.NumChannels = binary.LittleEndian.Uint16(b[22:24])
	h.SampleRate = binary.LittleEndian.Uint32(b[24:28])
	h.ByteRate = binary.LittleEndian.Uint32(b[28:32])
	h.BlockAlign = binary.LittleEndian.Uint16(b[32:34])
	h.BitsPerSample = binary.LittleEndian.Uint16(b[34:36])

	copy(h.Subchunk2ID[:], b[36:40])
	h.Subchunk2Size = binary.LittleEndian.Uint32(b[40:44])

	return h, nil
}

// Encode packs h back into 44 bytes without validating it.
func (h Header) Encode() []byte {
	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], h.ChunkID[:])
	binary.LittleEndian.PutUint32(header[4:8], h.ChunkSize)
	copy(header[8:12], h.Format[:])

	// fmt chunk (24 bytes)
	copy(header[12:16], h.Subchunk1ID[:])
	binary.LittleEndian.PutUint32(header[16:20], h.Subchunk1Size)
	binary.LittleEndian.PutUint16(header[20:22], h.AudioFormat)
	binary.LittleEndian.PutUint16(header[22:24], h.NumChannels)
	binary.LittleEndian.PutUint32(header[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], h.ByteRate)
	binary.LittleEndian.PutUint16(header[32:34], h.BlockAlign)
	binary.LittleEndian.PutUint16(header[34:36], h.BitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], h.Subchunk2ID[:])
	binary.LittleEndian.PutUint32(header[40:44], h.Subchunk2Size)

	return header
}

// Derive returns a copy of h with the channel layout, bit depth and payload size
// replaced and chunkSize, byteRate and blockAlign recomputed.
// Sample rate and the ID tags are carried over.
func (h Header) Derive(numChannels, bitsPerSample uint16, dataSize uint32) Header {
	h.NumChannels = numChannels
	h.BitsPerSample = bitsPerSample
	h.ByteRate = h.SampleRate * uint32(numChannels) * uint32(bitsPerSample) / 8
	h.BlockAlign = numChannels * bitsPerSample / 8
	h.Subchunk2Size = dataSize
	h.ChunkSize = riffOverhead + dataSize

	return h
}

// Validate reports whether the tags identify a canonical PCM WAVE header and
// the derived fields agree with each other.
func (h Header) Validate() error {
	if err := h.checkLayout(); err != nil {
		return err
	}

	if h.ChunkSize != riffOverhead+h.Subchunk2Size {
		return fmt.Errorf("%w: chunk size %d with data size %d", ErrInconsistentHeader, h.ChunkSize, h.Subchunk2Size)
	}

	if h.ByteRate != h.SampleRate*uint32(h.NumChannels)*uint32(h.BitsPerSample)/8 {
		return fmt.Errorf("%w: byte rate %d", ErrInconsistentHeader, h.ByteRate)
	}

	if h.BlockAlign != h.NumChannels*h.BitsPerSample/8 {
		return fmt.Errorf("%w: block align %d", ErrInconsistentHeader, h.BlockAlign)
	}

	return nil
}

// checkLayout looks only at the tags and the fmt fields that make the
// 44-byte layout canonical.
func (h Header) checkLayout() error {
	if h.ChunkID != riffID || h.Format != waveID {
		return ErrNotWavFile
	}

	if h.Subchunk1ID != fmtID || h.Subchunk2ID != dataID || h.Subchunk1Size != pcmFmtChunkSize {
		return ErrUnsupportedWavLayout
	}

	if h.AudioFormat != pcmFormat {
		return fmt.Errorf("%w: audio format %d", ErrOnlyPCMSupported, h.AudioFormat)
	}

	return nil
}

func (h Header) String() string {
	return fmt.Sprintf("%s/%s channels=%d rate=%d bits=%d data=%d",
		h.ChunkID[:], h.Format[:], h.NumChannels, h.SampleRate, h.BitsPerSample, h.Subchunk2Size)
}
