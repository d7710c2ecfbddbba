// Package config loads palette settings from defaults, an optional YAML file,
// an optional .env file beside it and PALETTE_* environment variables, in
// that order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/palette/constants"
	"github.com/lixenwraith/palette/palette"
	"github.com/lixenwraith/palette/terminal"
)

// DefaultPath is read when no -config flag is given
const DefaultPath = "palette.yaml"

type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Path  string `yaml:"path"`
}

type Config struct {
	// Source is the rgb.txt path; empty means the platform default locations
	Source     string `yaml:"source"`
	Columns    int    `yaml:"columns"`
	CellWidth  int    `yaml:"cell_width"`
	CellHeight int    `yaml:"cell_height"`
	Sort       string `yaml:"sort"`
	ColorMode  string `yaml:"color_mode"`
	// Start places the cursor on this colour when present in the table
	Start string `yaml:"start"`

	Sound SoundConfig `yaml:"sound"`
	Log   LogConfig   `yaml:"log"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Columns:    constants.DefaultColumns,
		CellWidth:  constants.DefaultCellWidth,
		CellHeight: constants.DefaultCellHeight,
		Sort:       "hsv",
		ColorMode:  "auto",
		Sound: SoundConfig{
			Volume: constants.DefaultChimeVolume,
		},
		Log: LogConfig{
			Path: filepath.Join("logs", "palette.log"),
		},
	}
}

// Load builds the configuration. A missing YAML or .env file is not an error.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("error reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("error parsing config file: %w", err)
			}
		}
	}

	// Existing environment variables take precedence over .env entries
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Environment variable names
const (
	EnvSource     = "PALETTE_SOURCE"
	EnvColumns    = "PALETTE_COLUMNS"
	EnvCellWidth  = "PALETTE_CELL_WIDTH"
	EnvCellHeight = "PALETTE_CELL_HEIGHT"
	EnvSort       = "PALETTE_SORT"
	EnvColorMode  = "PALETTE_COLOR"
	EnvStart      = "PALETTE_START"
	EnvSound      = "PALETTE_SOUND"
	EnvVolume     = "PALETTE_VOLUME"
	EnvDebug      = "PALETTE_DEBUG"
	EnvLogPath    = "PALETTE_LOG"
)

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = n
		return nil
	}
	flag := func(name string, dst *bool) error {
		v, ok := lookup(name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
		return nil
	}

	str(EnvSource, &c.Source)
	str(EnvSort, &c.Sort)
	str(EnvColorMode, &c.ColorMode)
	str(EnvStart, &c.Start)
	str(EnvLogPath, &c.Log.Path)

	if err := num(EnvColumns, &c.Columns); err != nil {
		return err
	}
	if err := num(EnvCellWidth, &c.CellWidth); err != nil {
		return err
	}
	if err := num(EnvCellHeight, &c.CellHeight); err != nil {
		return err
	}
	if err := flag(EnvSound, &c.Sound.Enabled); err != nil {
		return err
	}
	if err := flag(EnvDebug, &c.Log.Debug); err != nil {
		return err
	}

	if v, ok := lookup(EnvVolume); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVolume, err)
		}
		c.Sound.Volume = f
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", c.Columns)
	}
	if c.CellWidth < 1 || c.CellHeight < 1 {
		return fmt.Errorf("cell size must be at least 1x1, got %dx%d", c.CellWidth, c.CellHeight)
	}
	if _, err := palette.ParseSortMode(c.Sort); err != nil {
		return err
	}
	if _, err := terminal.ParseColorMode(c.ColorMode); err != nil {
		return err
	}
	if c.Start != "" {
		if _, err := colorful.Hex(c.Start); err != nil {
			return fmt.Errorf("start colour %q: %w", c.Start, err)
		}
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("sound volume must be in [0,1], got %g", c.Sound.Volume)
	}
	return nil
}

// SortMode is the parsed Sort field; call after Validate
func (c *Config) SortMode() palette.SortMode {
	m, _ := palette.ParseSortMode(c.Sort)
	return m
}

// Colors resolves ColorMode, running terminal detection for "auto"
func (c *Config) Colors() terminal.ColorMode {
	m, _ := terminal.ParseColorMode(c.ColorMode)
	return m
}

// StartHex is Start normalised to lowercase "#rrggbb", or "" when unset
func (c *Config) StartHex() string {
	col, err := colorful.Hex(c.Start)
	if c.Start == "" || err != nil {
		return ""
	}
	return col.Hex()
}
