package terrain

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/z21kamon/Diamond-Square-Islands/colorize"
	"github.com/z21kamon/Diamond-Square-Islands/heightfield"
	"github.com/z21kamon/Diamond-Square-Islands/waterlevel"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

// Config holds the knobs of terrain generation.
type Config struct {
	// Size is the side length of the heightfield, 2^k+1.
	Size int `json:"size"`

	// Roughness is the displacement decay exponent in [0, 1]. Higher values
	// make smoother terrain.
	Roughness float64 `json:"roughness"`

	// WaterLevel is the fraction of the elevation range under water, in
	// [0, 1].
	WaterLevel float64 `json:"waterLevel"`

	// Seed seeds the random source. Zero picks a seed from the clock on every
	// generation.
	Seed int64 `json:"seed"`

	// Palette names the band colors: classic or hue.
	Palette string `json:"palette"`

	// Top names the policy for cells above the mountain band: peak, clamp or
	// none.
	Top string `json:"top"`

	// TextureSize is the side length of the color texture. Zero uses the
	// heightfield's size.
	TextureSize int `json:"textureSize"`
}

// DefaultConfig returns the configuration used when nothing is given.
func DefaultConfig() Config {
	return Config{
		Size:       257,
		Roughness:  0.5,
		WaterLevel: 0.3,
		Palette:    "classic",
		Top:        "peak",
	}
}

// AddFlags binds the configuration to command line flags, with the current
// values as defaults.
func (cfg *Config) AddFlags(f *flag.FlagSet) {
	f.IntVar(&cfg.Size, "size", cfg.Size, "heightfield side length, 2^k+1")
	f.Float64Var(&cfg.Roughness, "roughness", cfg.Roughness, "displacement decay in [0, 1]; higher is smoother")
	f.Float64Var(&cfg.WaterLevel, "water", cfg.WaterLevel, "fraction of the elevation range under water, in [0, 1]")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed; 0 seeds from the clock")
	f.StringVar(&cfg.Palette, "palette", cfg.Palette, "band colors: classic or hue")
	f.StringVar(&cfg.Top, "top", cfg.Top, "cells above the mountain band: peak, clamp or none")
	f.IntVar(&cfg.TextureSize, "texture", cfg.TextureSize, "color texture side length; 0 matches the heightfield")
}

// LoadConfig reads a JSON configuration over the defaults. A missing file
// yields the defaults.
func LoadConfig(fs billy.Filesystem, name string) (Config, error) {
	cfg := DefaultConfig()
	file, err := fs.Open(name)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return cfg, nil
}

// Validate reports every problem with the configuration at once.
func (cfg Config) Validate() error {
	var err error
	if !heightfield.ValidSize(cfg.Size) {
		err = multierr.Append(err, &heightfield.InvalidSizeError{Size: cfg.Size})
	}
	if !(cfg.Roughness >= 0 && cfg.Roughness <= 1) {
		err = multierr.Append(err, fmt.Errorf("roughness %v out of range [0, 1]", cfg.Roughness))
	}
	err = multierr.Append(err, cfg.water().Validate())
	if _, paletteErr := cfg.palette(); paletteErr != nil {
		err = multierr.Append(err, paletteErr)
	}
	if cfg.TextureSize < 0 {
		err = multierr.Append(err, fmt.Errorf("texture size %d is negative", cfg.TextureSize))
	}
	return err
}

func (cfg Config) water() waterlevel.Calculator {
	return waterlevel.Calculator{Level: cfg.WaterLevel}
}

func (cfg Config) palette() (colorize.Palette, error) {
	top, topErr := colorize.ParseTop(cfg.Top)
	palette, paletteErr := colorize.PaletteByName(cfg.Palette, top)
	if err := multierr.Combine(topErr, paletteErr); err != nil {
		return colorize.Palette{}, err
	}
	return palette, nil
}

func (cfg Config) textureSize() int {
	if cfg.TextureSize == 0 {
		return cfg.Size
	}
	return cfg.TextureSize
}
