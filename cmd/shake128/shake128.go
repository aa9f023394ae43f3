// Command shake128 reads a message from stdin and prints N bytes of its SHAKE128 output.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/codahale/shake128"
	"github.com/codahale/shake128/multihash"
	cli "github.com/urfave/cli/v2"
)

// Set through -ldflags "-X main.version=...".
var version = "master"

var (
	inputFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "read the message from `FILE` instead of stdin",
		Value:   "-",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output `FORMAT`: hex or multihash",
		Value:   formatHex,
		EnvVars: []string{"SHAKE128_FORMAT"},
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Usage:   "log progress to stderr",
		EnvVars: []string{"SHAKE128_VERBOSE"},
	}
)

const (
	formatHex       = "hex"
	formatMultihash = "multihash"
)

var errUsage = errors.New("expected exactly one argument")

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            "shake128",
		Usage:           "print N bytes of the SHAKE128 output of a message",
		ArgsUsage:       "N",
		Version:         version,
		HideHelpCommand: true,
		Flags:           []cli.Flag{inputFlag, formatFlag, verboseFlag},
		Reader:          stdin,
		Writer:          stdout,
		ErrWriter:       stderr,
		Action:          digest,
	}
}

func digest(cctx *cli.Context) error {
	level := slog.LevelInfo
	if cctx.Bool(verboseFlag.Name) {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	if cctx.NArg() != 1 {
		return fmt.Errorf("%w, got %d", errUsage, cctx.NArg())
	}

	// N is an unsigned 32-bit integer which must also fit in an int.
	n, err := strconv.ParseUint(cctx.Args().First(), 10, min(32, strconv.IntSize-1))
	if err != nil {
		return fmt.Errorf("invalid output length: %w", err)
	}

	format := cctx.String(formatFlag.Name)
	if format != formatHex && format != formatMultihash {
		return fmt.Errorf("unknown output format %q", format)
	}

	in := cctx.App.Reader
	if path := cctx.String(inputFlag.Name); path != "-" {
		f, err := os.Open(path) //nolint:gosec // reading user-specified input is the point
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
		log.Debug("reading input", "path", path)
	}

	start := time.Now()
	out, err := shake128.Digest(in, int(n))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	log.Debug("computed digest", "length", n, "elapsed", time.Since(start))

	var s string
	switch format {
	case formatMultihash:
		m, err := multihash.Encode(out)
		if err != nil {
			return fmt.Errorf("encoding multihash: %w", err)
		}
		s = m.B58String()
	default:
		s = hex.EncodeToString(out)
	}

	_, err = io.WriteString(cctx.App.Writer, s)
	return err
}
