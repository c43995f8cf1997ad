package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/circuitweave/pkg/errors"
	"github.com/matzehuels/circuitweave/pkg/weave"
)

// Config is the user configuration, read from
// $XDG_CONFIG_HOME/circuitweave/config.toml. Every field has a sensible
// default; a missing file is not an error.
type Config struct {
	Defaults Defaults `toml:"defaults"`
	Colors   Colors   `toml:"colors"`
}

// Defaults sets the initial generation parameters.
type Defaults struct {
	// Style is the starting style ("simple" or "dense").
	Style string `toml:"style"`

	// Mode is the starting mode ("light" or "dark").
	Mode string `toml:"mode"`

	// Seed pins the starting seed; 0 draws a random one.
	Seed int64 `toml:"seed"`
}

// Colors holds the two-tone pairs for each mode.
type Colors struct {
	Light ColorPair `toml:"light"`
	Dark  ColorPair `toml:"dark"`
}

// ColorPair is a foreground/background pair in any form lipgloss accepts
// (hex or ANSI index).
type ColorPair struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: Defaults{
			Style: string(weave.DefaultStyle),
			Mode:  string(weave.DefaultMode),
		},
		Colors: Colors{
			Light: ColorPair{Foreground: "#2a2a37", Background: "#e6e1cf"},
			Dark:  ColorPair{Foreground: "#7fd4e4", Background: "#16161e"},
		},
	}
}

// LoadConfig reads the config file at path, layered over the defaults.
// A missing or empty path yields the defaults without error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// pair returns the color pair for a mode.
func (c Config) pair(mode weave.Mode) ColorPair {
	if mode == weave.ModeLight {
		return c.Colors.Light
	}
	return c.Colors.Dark
}
