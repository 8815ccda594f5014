package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/32bitkid/byteimg/config"
	"github.com/32bitkid/byteimg/layout"
	"github.com/32bitkid/byteimg/palette"
)

type cliArgs struct {
	config     string
	modes      string
	channels   int
	colorModel string
	format     string
	scale      int
	palette    string
	sampleBits uint
	offset     int64
	limit      int64
	output     string
	workers    int
	verbose    bool

	input []string
}

func parseFlags(args []string, stderr io.Writer) (cliArgs, error) {
	var a cliArgs
	fs := flag.NewFlagSet("byteimg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: byteimg [flags] <file|->\n\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&a.config, "config", "byteimg.yaml", "Settings file (YAML); missing file means defaults")
	fs.StringVar(&a.modes, "mode", "", "Comma-separated modes: "+strings.Join(layout.Names(), ", ")+" or "+layout.AllModes)
	fs.IntVar(&a.channels, "channels", 0, fmt.Sprintf("Channels per pixel (default %d)", config.DefaultChannels))
	fs.StringVar(&a.colorModel, "color", "", "Color model for linear/channel output: L, LA, RGB, RGBA, CMYK")
	fs.StringVar(&a.format, "format", "", "Output format: png, bmp, tiff, gif")
	fs.IntVar(&a.scale, "scale", 0, "Integer upscale factor")
	fs.StringVar(&a.palette, "palette", "", "Palette for single mode: "+strings.Join(palette.Names(), ", "))
	fs.UintVar(&a.sampleBits, "bits", 0, "Bits per sample: 1, 2, 4 or 8")
	fs.Int64Var(&a.offset, "offset", 0, "Skip this many bytes of input")
	fs.Int64Var(&a.limit, "limit", 0, "Read at most this many bytes (0 = all)")
	fs.StringVar(&a.output, "o", "", "Output directory, or - to write a single image to stdout")
	fs.IntVar(&a.workers, "workers", 0, "Modes rendered at once (0 = all)")
	fs.BoolVar(&a.verbose, "v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return a, err
	}

	a.input = fs.Args()
	return a, nil
}

// overrides turns the flags that were given into a settings overlay.
func (a cliArgs) overrides() *config.Settings {
	s := &config.Settings{
		Channels:   a.channels,
		ColorModel: a.colorModel,
		Format:     a.format,
		Scale:      a.scale,
		Palette:    a.palette,
		SampleBits: a.sampleBits,
		Offset:     a.offset,
		Limit:      a.limit,
		Workers:    a.workers,
	}
	if a.modes != "" {
		for _, m := range strings.Split(a.modes, ",") {
			if m = strings.TrimSpace(m); m != "" {
				s.Modes = append(s.Modes, m)
			}
		}
	}
	if a.output != "" && a.output != stdoutName {
		s.OutputDir = a.output
	}
	return s
}

func (a cliArgs) toStdout() bool { return a.output == stdoutName }
