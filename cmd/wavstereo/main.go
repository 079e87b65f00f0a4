// SPDX-License-Identifier: EPL-2.0

// wavstereo converts 16-bit PCM WAV files between mono, stereo and the packed
// 32-bit mid/side layout.
//
//	wavstereo [-strict] [-v] mono [-mode sum|left|right|diff] IN OUT
//	wavstereo [-strict] [-v] stereo LEFT RIGHT OUT
//	wavstereo [-strict] [-v] encode32 IN OUT
//	wavstereo [-strict] [-v] decode32 IN OUT
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/wavstereo"
	"github.com/ik5/wavstereo/audio"
)

const usage = `usage: wavstereo [-strict] [-v] <command> [arguments]

commands:
  mono [-mode sum|left|right|diff] IN OUT   fold a stereo file into mono
  stereo LEFT RIGHT OUT                     interleave two mono files
  encode32 IN OUT                           pack stereo frames into 32-bit words
  decode32 IN OUT                           rebuild stereo from 32-bit words
`

var errUsage = errors.New("invalid arguments")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wavstereo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	strict := fs.Bool("strict", false, "fail when stereo inputs differ in rate or length")
	verbose := fs.Bool("v", false, "log debug details")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	runner := wavstereo.NewRunner(logger, *strict)

	out, err := dispatch(runner, fs.Args(), stderr)
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "wavstereo: %v\n%s", err, usage)

			return 2
		}

		logger.Error("conversion failed", "error", err)

		return 1
	}

	logger.Debug("conversion finished", "command", fs.Arg(0), "output", out)
	fmt.Fprintln(stdout, "Wrote:", out)

	return 0
}

// dispatch runs the command named by args[0] and returns the path it wrote.
func dispatch(r *wavstereo.Runner, args []string, stderr io.Writer) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "mono":
		fs := flag.NewFlagSet("mono", flag.ContinueOnError)
		fs.SetOutput(stderr)
		modeName := fs.String("mode", audio.DefaultMode.String(), "channel selection: sum, left, right or diff")

		if err := fs.Parse(rest); err != nil {
			return "", fmt.Errorf("%w: %w", errUsage, err)
		}

		mode, err := audio.ParseMode(*modeName)
		if err != nil {
			return "", fmt.Errorf("%w: %w", errUsage, err)
		}

		if err := wantArgs(cmd, fs.Args(), 2); err != nil {
			return "", err
		}

		return fs.Arg(1), r.StereoToMonoFile(fs.Arg(0), fs.Arg(1), mode)

	case "stereo":
		if err := wantArgs(cmd, rest, 3); err != nil {
			return "", err
		}

		return rest[2], r.MonoToStereoFile(rest[0], rest[1], rest[2])

	case "encode32":
		if err := wantArgs(cmd, rest, 2); err != nil {
			return "", err
		}

		return rest[1], r.EncodeMidSide32File(rest[0], rest[1])

	case "decode32":
		if err := wantArgs(cmd, rest, 2); err != nil {
			return "", err
		}

		return rest[1], r.DecodeMidSide32File(rest[0], rest[1])
	}

	return "", fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func wantArgs(cmd string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d paths, got %d", errUsage, cmd, n, len(args))
	}

	return nil
}
