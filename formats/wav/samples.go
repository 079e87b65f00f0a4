// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
)

// DecodeInt16LE reads b as consecutive little-endian signed 16-bit samples.
func DecodeInt16LE(b []byte) ([]int16, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes for 16-bit samples", ErrMisalignedBuffer, len(b))
	}

	samples := make([]int16, len(b)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(b[2*i : 2*i+2]))
	}

	return samples, nil
}

// EncodeInt16LE is the inverse of DecodeInt16LE.
func EncodeInt16LE(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(s))
	}

	return buf
}

// DecodeUint32LE reads b as consecutive little-endian unsigned 32-bit words.
func DecodeUint32LE(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes for 32-bit samples", ErrMisalignedBuffer, len(b))
	}

	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[4*i : 4*i+4])
	}

	return words, nil
}

// EncodeUint32LE is the inverse of DecodeUint32LE.
func EncodeUint32LE(words []uint32) []byte {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], w)
	}

	return buf
}
