package byteimg

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/32bitkid/byteimg/config"
	"github.com/32bitkid/byteimg/layout"
	"github.com/32bitkid/byteimg/log"
	"github.com/32bitkid/byteimg/palette"
	"github.com/32bitkid/byteimg/render"
	"github.com/32bitkid/byteimg/unpack"
)

// Options configures Visualize. Zero values pick the defaults from the
// config package.
type Options struct {
	Modes      []layout.Mode
	Channels   int
	ColorModel render.ColorModel
	// Palette colours single mode output; nil renders plain grayscale.
	Palette    color.Palette
	SampleBits uint
	Scale      int
	// Workers bounds how many modes run at once; 0 runs them all together.
	Workers int
}

// OptionsFrom resolves validated settings into Options.
func OptionsFrom(s *config.Settings) (Options, error) {
	if err := s.Validate(); err != nil {
		return Options{}, err
	}

	modes, _ := s.ParsedModes()
	model, _ := render.ParseColorModel(s.ColorModel)
	opts := Options{
		Modes:      modes,
		Channels:   s.Channels,
		ColorModel: model,
		SampleBits: s.SampleBits,
		Scale:      s.Scale,
		Workers:    s.Workers,
	}
	if !palette.IsGray(s.Palette) {
		pal, err := palette.Lookup(s.Palette)
		if err != nil {
			return Options{}, err
		}
		opts.Palette = pal
	}
	return opts, nil
}

type Result struct {
	Mode    layout.Mode
	Grid    *layout.Grid
	Image   image.Image
	Elapsed time.Duration
}

// Visualize lays buf out once per requested mode and renders each grid.
// Modes run concurrently; results come back in request order. The first
// failure cancels the modes that have not started.
func Visualize(ctx context.Context, buf []byte, opts Options) ([]Result, error) {
	if len(opts.Modes) == 0 {
		opts.Modes = layout.Modes[:]
	}
	if opts.Channels == 0 {
		opts.Channels = config.DefaultChannels
	}
	if opts.SampleBits == 0 {
		opts.SampleBits = 8
	}

	samples, err := unpack.Samples(buf, opts.SampleBits)
	if err != nil {
		return nil, err
	}
	if opts.SampleBits != 8 {
		log.Debug("unpacked %d bytes into %d %d-bit samples", len(buf), len(samples), opts.SampleBits)
	}

	results := make([]Result, len(opts.Modes))
	g, gCtx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, mode := range opts.Modes {
		i, mode := i, mode
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := visualizeOne(samples, mode, opts)
			if err != nil {
				return fmt.Errorf("mode %s: %w", mode, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func visualizeOne(buf []byte, mode layout.Mode, opts Options) (Result, error) {
	start := time.Now()

	grid, err := layout.Build(mode, buf, opts.Channels)
	if err != nil {
		return Result{}, err
	}
	log.Debug("%s: %dx%dx%d grid", mode, grid.Height, grid.Width, grid.Channels)

	img, err := render.Image(grid, mode, render.Options{
		ColorModel: opts.ColorModel,
		Palette:    opts.Palette,
		Scale:      opts.Scale,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Mode:    mode,
		Grid:    grid,
		Image:   img,
		Elapsed: time.Since(start),
	}, nil
}

// FastImage renders buf with a single named mode in one call. An empty
// colorModel means RGB.
func FastImage(buf []byte, mode string, channels int, colorModel render.ColorModel) (image.Image, error) {
	m, err := layout.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	grid, err := layout.Build(m, buf, channels)
	if err != nil {
		return nil, err
	}
	return render.Image(grid, m, render.Options{ColorModel: colorModel})
}
