// Command byteimg renders the raw bytes of a file as images, one per layout
// mode.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sahilm/fuzzy"
	"golang.org/x/term"

	"github.com/32bitkid/byteimg"
	"github.com/32bitkid/byteimg/config"
	"github.com/32bitkid/byteimg/layout"
	"github.com/32bitkid/byteimg/log"
	"github.com/32bitkid/byteimg/render"
)

const stdoutName = "-"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, argv []string, stdout io.Writer, stderr io.Writer) int {
	args, err := parseFlags(argv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}
	if len(args.input) != 1 {
		fmt.Fprintln(stderr, "usage: byteimg [flags] <file|->")
		return 2
	}
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	if err := execute(ctx, args, stdout); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}

func execute(ctx context.Context, args cliArgs, stdout io.Writer) error {
	base, err := config.Load(args.config)
	if err != nil {
		return err
	}
	settings := config.Merge(base, args.overrides())

	opts, err := byteimg.OptionsFrom(settings)
	if err != nil {
		return withSuggestion(err)
	}
	format, _ := render.ParseFormat(settings.Format)

	if args.toStdout() {
		if len(opts.Modes) != 1 {
			return fmt.Errorf("%w: writing to stdout needs exactly one mode, have %d", layout.ErrInvalidArgument, len(opts.Modes))
		}
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("refusing to write image data to a terminal")
		}
	}

	start := time.Now()
	log.Info("Loading file...")
	src := byteimg.Source{Path: args.input[0], Offset: settings.Offset, Limit: settings.Limit}
	buf, err := src.Load()
	if err != nil {
		return err
	}
	if len(buf) == 0 {
		return fmt.Errorf("%s: no input bytes", src.Path)
	}
	log.Info("Loaded %d bytes in %s", len(buf), time.Since(start))

	for _, m := range opts.Modes {
		log.Info("Calculating with mode '%s'", m)
	}
	results, err := byteimg.Visualize(ctx, buf, opts)
	if err != nil {
		return err
	}

	for _, res := range results {
		if args.toStdout() {
			if err := render.Encode(stdout, res.Image, format); err != nil {
				return fmt.Errorf("encoding %s: %w", res.Mode, err)
			}
			log.Info("Mode '%s' done in %s", res.Mode, res.Elapsed)
			continue
		}

		path := filepath.Join(settings.OutputDir, "output-"+res.Mode.String()+format.Extension())
		if err := writeImage(path, res, format); err != nil {
			return err
		}
		log.Info("Saved %s, mode '%s' done in %s", path, res.Mode, res.Elapsed)
	}

	log.Info("Done in %s", time.Since(start))
	return nil
}

func writeImage(path string, res byteimg.Result, format render.Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.Encode(f, res.Image, format); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// withSuggestion appends the closest mode name to an unknown-mode error.
func withSuggestion(err error) error {
	var unknown *layout.UnknownModeError
	if !errors.As(err, &unknown) || unknown.Name == "" {
		return err
	}
	matches := fuzzy.Find(unknown.Name, append(layout.Names(), layout.AllModes))
	if len(matches) == 0 {
		return err
	}
	return fmt.Errorf("%w (did you mean %q?)", err, matches[0].Str)
}
