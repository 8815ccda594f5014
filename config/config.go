// Package config holds the settings that drive a visualization run and
// loads them from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/32bitkid/byteimg/layout"
	"github.com/32bitkid/byteimg/palette"
	"github.com/32bitkid/byteimg/render"
	"github.com/32bitkid/byteimg/unpack"
)

// Settings is one visualization run. Zero values in a file mean "keep the
// default".
type Settings struct {
	Modes      []string `yaml:"modes,omitempty"`
	Channels   int      `yaml:"channels,omitempty"`
	ColorModel string   `yaml:"color_model,omitempty"`
	Format     string   `yaml:"format,omitempty"`
	Scale      int      `yaml:"scale,omitempty"`
	Palette    string   `yaml:"palette,omitempty"`
	SampleBits uint     `yaml:"sample_bits,omitempty"`
	Offset     int64    `yaml:"offset,omitempty"`
	Limit      int64    `yaml:"limit,omitempty"`
	OutputDir  string   `yaml:"output_dir,omitempty"`
	Workers    int      `yaml:"workers,omitempty"`
}

const DefaultChannels = 3

// Default returns the stock settings: every mode, three RGB channels, PNG.
func Default() *Settings {
	return &Settings{
		Modes:      layout.Names(),
		Channels:   DefaultChannels,
		ColorModel: string(render.DefaultColorModel),
		Format:     string(render.DefaultFormat),
		Scale:      1,
		Palette:    palette.Default,
		SampleBits: 8,
		OutputDir:  ".",
	}
}

// Load reads path and merges it onto Default. A missing file is not an
// error.
func Load(path string) (*Settings, error) {
	defaults := Default()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return Merge(defaults, file), nil
}

// Parse decodes YAML settings without applying defaults.
func Parse(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Merge overlays the non-zero fields of over onto base.
func Merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	result := *base
	if over == nil {
		return &result
	}

	if len(over.Modes) > 0 {
		result.Modes = append([]string(nil), over.Modes...)
	}
	if over.Channels != 0 {
		result.Channels = over.Channels
	}
	if over.ColorModel != "" {
		result.ColorModel = over.ColorModel
	} else if over.Channels != 0 {
		result.ColorModel = fitColorModel(result.ColorModel, over.Channels)
	}
	if over.Format != "" {
		result.Format = over.Format
	}
	if over.Scale != 0 {
		result.Scale = over.Scale
	}
	if over.Palette != "" {
		result.Palette = over.Palette
	}
	if over.SampleBits != 0 {
		result.SampleBits = over.SampleBits
	}
	if over.Offset != 0 {
		result.Offset = over.Offset
	}
	if over.Limit != 0 {
		result.Limit = over.Limit
	}
	if over.OutputDir != "" {
		result.OutputDir = over.OutputDir
	}
	if over.Workers != 0 {
		result.Workers = over.Workers
	}
	return &result
}

// fitColorModel keeps current when it already takes channels values per
// pixel, otherwise picks the model that does. Counts no model fits leave
// current alone for Validate to report.
func fitColorModel(current string, channels int) string {
	if m, err := render.ParseColorModel(current); err == nil && m.Channels() == channels {
		return current
	}
	if m, ok := render.ForChannels(channels); ok {
		return string(m)
	}
	return current
}

// ParsedModes expands the mode names, including the "all" alias, in order
// and without duplicates.
func (s *Settings) ParsedModes() ([]layout.Mode, error) {
	var (
		modes []layout.Mode
		seen  [len(layout.Modes)]bool
	)
	for _, name := range s.Modes {
		expanded, err := layout.ParseModes(name)
		if err != nil {
			return nil, err
		}
		for _, m := range expanded {
			if !seen[m] {
				seen[m] = true
				modes = append(modes, m)
			}
		}
	}
	return modes, nil
}

// Validate checks every field and reports the first problem.
func (s *Settings) Validate() error {
	if len(s.Modes) == 0 {
		return fmt.Errorf("%w: no modes selected", layout.ErrInvalidArgument)
	}
	modes, err := s.ParsedModes()
	if err != nil {
		return err
	}
	if s.Channels < 1 {
		return fmt.Errorf("%w: channel count %d", layout.ErrInvalidArgument, s.Channels)
	}
	model, err := render.ParseColorModel(s.ColorModel)
	if err != nil {
		return err
	}
	for _, m := range modes {
		if m.Multichannel() && model.Channels() != s.Channels {
			return fmt.Errorf("%w: %s needs %d channels, configured %d", render.ErrColorModel, model, model.Channels(), s.Channels)
		}
	}
	if _, err := render.ParseFormat(s.Format); err != nil {
		return err
	}
	if s.Scale < 1 {
		return fmt.Errorf("%w: scale %d", layout.ErrInvalidArgument, s.Scale)
	}
	if _, err := palette.Lookup(s.Palette); err != nil {
		return err
	}
	if !unpack.Valid(s.SampleBits) {
		return fmt.Errorf("%w: %d", unpack.ErrSampleBits, s.SampleBits)
	}
	if s.Offset < 0 || s.Limit < 0 {
		return fmt.Errorf("%w: negative offset or limit", layout.ErrInvalidArgument)
	}
	if s.Workers < 0 {
		return fmt.Errorf("%w: workers %d", layout.ErrInvalidArgument, s.Workers)
	}
	return nil
}
