package params

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
)

// ErrBadConfig indicates the parameter config file could not be read or
// parsed.
var ErrBadConfig = errors.New("bad parameter config")

// Flags holds CLI flag names for parameter configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Width      string
	Brightness string
	Contrast   string
	File       string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:      f,
		Width:      DefaultWidth,
		Brightness: DefaultBrightness,
		Contrast:   DefaultContrast,
	}
}

// Config holds CLI flag values for the initial transformation parameters.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. After flag parsing, [Config.Resolve] merges an
// optional YAML defaults file with explicitly-set flags and returns the
// startup [Snapshot].
type Config struct {
	Flags      Flags
	File       string
	Width      int
	Brightness int
	Contrast   float64
}

// NewConfig returns a new [Config] with default flag names and default
// parameter values.
func NewConfig() *Config {
	f := Flags{
		Width:      "width",
		Brightness: "brightness",
		Contrast:   "contrast",
		File:       "config",
	}

	return f.NewConfig()
}

// RegisterFlags adds parameter flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&c.Width, c.Flags.Width, "w", c.Width,
		fmt.Sprintf("render width in glyph columns [%d, %d]", MinWidth, MaxWidth))
	flags.IntVarP(&c.Brightness, c.Flags.Brightness, "b", c.Brightness,
		fmt.Sprintf("brightness offset [%d, %d]", MinBrightness, MaxBrightness))
	flags.Float64VarP(&c.Contrast, c.Flags.Contrast, "c", c.Contrast,
		fmt.Sprintf("contrast multiplier [%.1f, %.1f]", MinContrast, MaxContrast))
	flags.StringVar(&c.File, c.Flags.File, "",
		"YAML file providing parameter defaults")
}

// fileParams mirrors the YAML defaults file. Pointer fields distinguish
// "absent" from zero values.
type fileParams struct {
	Width      *int     `yaml:"width"`
	Brightness *int     `yaml:"brightness"`
	Contrast   *float64 `yaml:"contrast"`
}

// Resolve returns the startup parameter snapshot. When a config file is set,
// its values apply first; flags the user explicitly passed override the
// file. All values are clamped into range.
func (c *Config) Resolve(flags *pflag.FlagSet) (Snapshot, error) {
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
		}

		var fp fileParams

		err = yaml.Unmarshal(data, &fp)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: %s: %w", ErrBadConfig, c.File, err)
		}

		if fp.Width != nil && !flags.Changed(c.Flags.Width) {
			c.Width = *fp.Width
		}

		if fp.Brightness != nil && !flags.Changed(c.Flags.Brightness) {
			c.Brightness = *fp.Brightness
		}

		if fp.Contrast != nil && !flags.Changed(c.Flags.Contrast) {
			c.Contrast = *fp.Contrast
		}
	}

	return NewStore(Snapshot{
		Width:      c.Width,
		Brightness: c.Brightness,
		Contrast:   c.Contrast,
	}).Snapshot(), nil
}
