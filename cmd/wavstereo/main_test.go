// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ik5/wavstereo/formats/wav"
	"github.com/ik5/wavstereo/internal/audiotest"
)

func writeInput(t *testing.T, dir, name string, channels int, samples []int16) string {
	t.Helper()

	path := filepath.Join(dir, name)
	data := audiotest.BuildWAV(
		audiotest.WAVSpec{SampleRate: 8000, Channels: channels, BitsPerSample: 16},
		audiotest.Int16Bytes(samples))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func readSamples(t *testing.T, path string) (wav.Header, []int16) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	f, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	samples, err := f.Int16Samples()
	if err != nil {
		t.Fatal(err)
	}

	return f.Header, samples
}

func TestRun_Commands(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stereo := writeInput(t, dir, "stereo.wav", 2, []int16{10, 4, -7, 2})
	left := writeInput(t, dir, "l.wav", 1, []int16{1, 2})
	right := writeInput(t, dir, "r.wav", 1, []int16{3, 4})

	tests := []struct {
		name     string
		args     []string
		out      string
		channels uint16
		want     []int16
	}{
		{"mono default", []string{"mono", stereo, "sum.wav"}, "sum.wav", 1, []int16{7, -3}},
		{"mono left", []string{"mono", "-mode", "left", stereo, "left.wav"}, "left.wav", 1, []int16{10, -7}},
		{"mono numeric diff", []string{"mono", "-mode=3", stereo, "diff.wav"}, "diff.wav", 1, []int16{3, -5}},
		{"stereo", []string{"stereo", left, right, "st.wav"}, "st.wav", 2, []int16{1, 3, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := slices.Clone(tt.args)
			args[len(args)-1] = filepath.Join(dir, tt.out)

			var stdout, stderr bytes.Buffer
			if code := run(args, &stdout, &stderr); code != 0 {
				t.Fatalf("run(%v) = %d, stderr: %s", args, code, stderr.String())
			}

			if !strings.Contains(stdout.String(), "Wrote:") {
				t.Errorf("stdout = %q", stdout.String())
			}

			h, got := readSamples(t, args[len(args)-1])
			if h.NumChannels != tt.channels {
				t.Errorf("channels = %d, want %d", h.NumChannels, tt.channels)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("samples = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRun_Encode32Decode32(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeInput(t, dir, "in.wav", 2, []int16{5, 1})
	packed := filepath.Join(dir, "packed.wav")
	decoded := filepath.Join(dir, "decoded.wav")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"encode32", in, packed}, &stdout, &stderr); code != 0 {
		t.Fatalf("encode32 exit %d: %s", code, stderr.String())
	}

	if code := run([]string{"-v", "decode32", packed, decoded}, &stdout, &stderr); code != 0 {
		t.Fatalf("decode32 exit %d: %s", code, stderr.String())
	}

	if !strings.Contains(stderr.String(), "conversion finished") {
		t.Errorf("verbose run did not log debug output: %q", stderr.String())
	}

	// word 0x00010005: semi-sum 1, semi-difference 5
	_, got := readSamples(t, decoded)
	if !slices.Equal(got, []int16{6, -4}) {
		t.Errorf("samples = %v, want [6 -4]", got)
	}
}

func TestRun_StrictMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	left := writeInput(t, dir, "l.wav", 1, []int16{1, 2, 3})
	right := writeInput(t, dir, "r.wav", 1, []int16{4})
	out := filepath.Join(dir, "out.wav")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"stereo", left, right, out}, &stdout, &stderr); code != 0 {
		t.Fatalf("lenient run exit %d: %s", code, stderr.String())
	}

	if !strings.Contains(stderr.String(), "level=WARN") {
		t.Errorf("lenient run did not warn: %q", stderr.String())
	}

	stderr.Reset()
	strictOut := filepath.Join(dir, "strict.wav")
	if code := run([]string{"-strict", "stereo", left, right, strictOut}, &stdout, &stderr); code != 1 {
		t.Errorf("strict run exit %d, want 1", code)
	}

	if _, err := os.Stat(strictOut); !os.IsNotExist(err) {
		t.Errorf("strict run left an output file: %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mono := writeInput(t, dir, "mono.wav", 1, []int16{1, 2})

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no command", nil, 2},
		{"unknown command", []string{"reverse", mono, "x.wav"}, 2},
		{"missing paths", []string{"encode32", mono}, 2},
		{"bad mode", []string{"mono", "-mode", "mid", mono, "x.wav"}, 2},
		{"unknown flag", []string{"-loud", "mono", mono, "x.wav"}, 2},
		{"help", []string{"-h"}, 0},
		{"mono input", []string{"mono", mono, filepath.Join(dir, "x.wav")}, 1},
		{"missing input", []string{"decode32", filepath.Join(dir, "nope.wav"), filepath.Join(dir, "y.wav")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.code {
				t.Errorf("run(%v) = %d, want %d; stderr: %s", tt.args, code, tt.code, stderr.String())
			}
		})
	}
}
