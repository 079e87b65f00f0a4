// SPDX-License-Identifier: EPL-2.0

package wavstereo

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/wavstereo/audio"
	"github.com/ik5/wavstereo/formats/aiff"
	"github.com/ik5/wavstereo/formats/wav"
)

// ErrUnsupportedExtension is returned when no decoder is registered for an input file.
var ErrUnsupportedExtension = errors.New("unsupported input file extension")

// Runner connects files on disk to the channel transforms. Every check runs
// before the output is created, so a failed conversion leaves nothing behind.
type Runner struct {
	Converter *audio.Converter
	Registry  *audio.Registry
}

// NewRunner returns a Runner that reads WAV and 16-bit AIFF input.
func NewRunner(logger *slog.Logger, strict bool) *Runner {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return &Runner{
		Converter: &audio.Converter{Logger: logger, Strict: strict},
		Registry:  reg,
	}
}

// StereoToMonoFile writes a mono file built from the stereo input with mode.
func (r *Runner) StereoToMonoFile(inPath, outPath string, mode audio.Mode) error {
	in, err := r.load(inPath)
	if err != nil {
		return err
	}

	if err := audio.RequireStereo16(in.Header); err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	samples, err := in.Int16Samples()
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	h, mono, err := r.Converter.StereoToMono(in.Header, samples, mode)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	return save(outPath, &wav.File{Header: h, Payload: wav.EncodeInt16LE(mono)})
}

// MonoToStereoFile interleaves two mono inputs into one stereo file.
func (r *Runner) MonoToStereoFile(leftPath, rightPath, outPath string) error {
	left, err := r.load(leftPath)
	if err != nil {
		return err
	}

	right, err := r.load(rightPath)
	if err != nil {
		return err
	}

	if err := audio.RequireMono16(left.Header); err != nil {
		return fmt.Errorf("%s: %w", leftPath, err)
	}

	if err := audio.RequireMono16(right.Header); err != nil {
		return fmt.Errorf("%s: %w", rightPath, err)
	}

	leftSamples, err := left.Int16Samples()
	if err != nil {
		return fmt.Errorf("%s: %w", leftPath, err)
	}

	rightSamples, err := right.Int16Samples()
	if err != nil {
		return fmt.Errorf("%s: %w", rightPath, err)
	}

	h, stereo, err := r.Converter.MonoToStereo(left.Header, leftSamples, right.Header, rightSamples)
	if err != nil {
		return fmt.Errorf("%s + %s: %w", leftPath, rightPath, err)
	}

	return save(outPath, &wav.File{Header: h, Payload: wav.EncodeInt16LE(stereo)})
}

// EncodeMidSide32File packs a 16-bit stereo input into 32-bit words.
func (r *Runner) EncodeMidSide32File(inPath, outPath string) error {
	in, err := r.load(inPath)
	if err != nil {
		return err
	}

	if err := audio.RequireStereo16(in.Header); err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	samples, err := in.Int16Samples()
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	h, words, err := r.Converter.EncodeMidSide32(in.Header, samples)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	return save(outPath, &wav.File{Header: h, Payload: wav.EncodeUint32LE(words)})
}

// DecodeMidSide32File rebuilds a 16-bit stereo file from packed 32-bit words.
func (r *Runner) DecodeMidSide32File(inPath, outPath string) error {
	in, err := r.load(inPath)
	if err != nil {
		return err
	}

	if err := audio.RequirePacked32(in.Header); err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	words, err := in.Uint32Samples()
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	h, stereo, err := r.Converter.DecodeMidSide32(in.Header, words)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	return save(outPath, &wav.File{Header: h, Payload: wav.EncodeInt16LE(stereo)})
}

func (r *Runner) load(path string) (*wav.File, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	dec, ok := r.Registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, path)
	}

	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer in.Close()

	f, err := dec.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// save writes f to a temporary file next to path and moves it into place
// once it is on disk.
func save(path string, f *wav.File) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("%w", err)
	}

	if _, err = f.WriteTo(tmp); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

var defaultRunner = NewRunner(nil, false)

// StereoToMonoFile converts with the default runner.
func StereoToMonoFile(inPath, outPath string, mode audio.Mode) error {
	return defaultRunner.StereoToMonoFile(inPath, outPath, mode)
}

// MonoToStereoFile converts with the default runner.
func MonoToStereoFile(leftPath, rightPath, outPath string) error {
	return defaultRunner.MonoToStereoFile(leftPath, rightPath, outPath)
}

// EncodeMidSide32File converts with the default runner.
func EncodeMidSide32File(inPath, outPath string) error {
	return defaultRunner.EncodeMidSide32File(inPath, outPath)
}

// DecodeMidSide32File converts with the default runner.
func DecodeMidSide32File(inPath, outPath string) error {
	return defaultRunner.DecodeMidSide32File(inPath, outPath)
}
