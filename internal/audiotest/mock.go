// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// WAVSpec describes a test file. It does not import the wav package so the
// wav tests can use it too.
type WAVSpec struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	// ExtraChunks are written between the fmt and data chunks.
	ExtraChunks []Chunk
	// FmtExtra is appended to the fmt chunk body (cbSize and friends).
	FmtExtra []byte
}

// Chunk is a raw RIFF chunk.
type Chunk struct {
	ID   string
	Body []byte
}

// BuildWAV assembles a RIFF/WAVE file around payload. With no extra chunks and
// no fmt extension the result is the canonical 44-byte layout.
func BuildWAV(spec WAVSpec, payload []byte) []byte {
	bits := uint16(spec.BitsPerSample)
	channels := uint16(spec.Channels)

	fmtBody := new(bytes.Buffer)
	binary.Write(fmtBody, binary.LittleEndian, uint16(1))
	binary.Write(fmtBody, binary.LittleEndian, channels)
	binary.Write(fmtBody, binary.LittleEndian, uint32(spec.SampleRate))
	binary.Write(fmtBody, binary.LittleEndian, uint32(spec.SampleRate)*uint32(channels)*uint32(bits)/8)
	binary.Write(fmtBody, binary.LittleEndian, channels*bits/8)
	binary.Write(fmtBody, binary.LittleEndian, bits)
	fmtBody.Write(spec.FmtExtra)

	body := new(bytes.Buffer)
	body.WriteString("WAVE")
	writeChunk(body, "fmt ", fmtBody.Bytes())
	for _, c := range spec.ExtraChunks {
		writeChunk(body, c.ID, c.Body)
	}
	writeChunk(body, "data", payload)

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func writeChunk(buf *bytes.Buffer, id string, body []byte) {
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(body)))
	buf.Write(body)
	if len(body)%2 == 1 {
		buf.WriteByte(0)
	}
}

// Int16Bytes packs samples little-endian.
func Int16Bytes(samples []int16) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

// Uint32Bytes packs words little-endian.
func Uint32Bytes(words []uint32) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, words)

	return buf.Bytes()
}

// Interleave builds a stereo buffer out of two channels of equal length.
func Interleave(left, right []int16) []int16 {
	out := make([]int16, 0, len(left)*2)
	for i := range left {
		out = append(out, left[i], right[i])
	}

	return out
}

// Sine returns n samples of a sine wave at the given frequency and peak amplitude.
func Sine(sampleRate, n int, frequency float64, amplitude int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = int16(float64(amplitude) * math.Sin(2*math.Pi*frequency*t))
	}

	return out
}

// Ramp returns n samples starting at start and stepping by step, wrapping
// around the int16 range.
func Ramp(n int, start, step int16) []int16 {
	out := make([]int16, n)
	v := start
	for i := range out {
		out[i] = v
		v += step
	}

	return out
}
