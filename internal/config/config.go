// Package config loads picker settings from a TOML file and command-line
// flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"hsbpick/internal/color"
)

// Config is the on-disk configuration. Flags override file values.
type Config struct {
	Hue        float64 `toml:"hue"`
	Saturation float64 `toml:"saturation"`
	Brightness float64 `toml:"brightness"`
	MinPressMS int     `toml:"min_press_ms"`
	GridWidth  int     `toml:"grid_width"`
	GridHeight int     `toml:"grid_height"`
	// TrackWidth of 0 makes the hue track as wide as the grid.
	TrackWidth int `toml:"track_width"`
	// Locale is a BCP 47 tag selecting how the readouts format numbers.
	Locale string `toml:"locale"`
	Debug  bool   `toml:"debug"`
}

func Default() Config {
	s := color.DefaultState()
	return Config{
		Hue:        s.Hue,
		Saturation: s.Saturation,
		Brightness: s.Brightness,
		MinPressMS: 50,
		GridWidth:  64,
		GridHeight: 16,
		Locale:     "en",
	}
}

// Dir is the per-user settings directory, ~/.hsbpick.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".hsbpick"), nil
}

// Load reads the file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault reads ~/.hsbpick/config.toml if it exists.
func LoadDefault() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Default(), err
	}
	cfg, err := Load(filepath.Join(dir, "config.toml"))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// FromArgs parses command-line flags, loads the config file they name (or
// the default one) and applies the flags that were set on top of it.
func FromArgs(args []string, out io.Writer) (Config, error) {
	fset := flag.NewFlagSet("hsbpick", flag.ContinueOnError)
	fset.SetOutput(out)
	path := fset.String("config", "", "path to config file (default ~/.hsbpick/config.toml)")
	hue := fset.Float64("hue", 0, "initial hue in [0, 1]")
	sat := fset.Float64("saturation", 0, "initial saturation in [0, 1]")
	bright := fset.Float64("brightness", 0, "initial brightness channel in [0, 1], 0 is the top of the grid")
	locale := fset.String("locale", "", "BCP 47 locale for the readouts, e.g. en or de")
	debug := fset.Bool("debug", false, "write a debug log under ~/.hsbpick/logs")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	var cfg Config
	var err error
	if *path != "" {
		cfg, err = Load(*path)
	} else {
		cfg, err = LoadDefault()
	}
	if err != nil {
		return cfg, err
	}

	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hue":
			cfg.Hue = *hue
		case "saturation":
			cfg.Saturation = *sat
		case "brightness":
			cfg.Brightness = *bright
		case "locale":
			cfg.Locale = *locale
		case "debug":
			cfg.Debug = *debug
		}
	})
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.InitialState().Validate(); err != nil {
		return err
	}
	if c.MinPressMS < 1 {
		return fmt.Errorf("min_press_ms must be at least 1, got %d", c.MinPressMS)
	}
	if c.GridWidth < 2 || c.GridHeight < 2 {
		return fmt.Errorf("grid must be at least 2x2, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.TrackWidth < 0 {
		return fmt.Errorf("track_width must not be negative, got %d", c.TrackWidth)
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	return nil
}

// Language parses Locale. An empty locale means English.
func (c Config) Language() (language.Tag, error) {
	if c.Locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

func (c Config) InitialState() color.State {
	return color.State{Hue: c.Hue, Saturation: c.Saturation, Brightness: c.Brightness}
}

func (c Config) MinPress() time.Duration {
	return time.Duration(c.MinPressMS) * time.Millisecond
}
