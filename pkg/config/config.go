// Package config loads optional mindweave.toml settings.
//
// Everything has a default matching the stock mind map, so the tool runs
// with no configuration at all. A config file can override the root node
// identity and the branch palette:
//
//	[root]
//	id = "Life_Systems"
//	label = "Life Systems Master Map"
//	color = "#f0f8ff"
//
//	palette = ["#ff6b6b", "#4dabf7"]
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jhartweg/mindweave/pkg/color"
	"github.com/jhartweg/mindweave/pkg/mindmap"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "mindweave.toml"

// Root configures the mind map's root node.
type Root struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Color string `toml:"color"`
}

// Config holds all tool settings.
type Config struct {
	Root    Root     `toml:"root"`
	Palette []string `toml:"palette"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Root: Root{
			ID:    mindmap.DefaultRootID,
			Label: mindmap.DefaultRootLabel,
			Color: mindmap.DefaultRootColor,
		},
		Palette: mindmap.DefaultPalette,
	}
}

// Load reads a TOML config file and merges it over the defaults. Fields the
// file does not set keep their default values. All colors are validated as
// 6-hex-digit form.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.Root.ID != "" {
		cfg.Root.ID = file.Root.ID
	}
	if file.Root.Label != "" {
		cfg.Root.Label = file.Root.Label
	}
	if file.Root.Color != "" {
		cfg.Root.Color = file.Root.Color
	}
	if len(file.Palette) > 0 {
		cfg.Palette = file.Palette
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads DefaultPath if it exists, otherwise returns Default().
// A missing default config is not an error; a broken one is.
func LoadDefault() (Config, error) {
	if _, err := os.Stat(DefaultPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(DefaultPath)
}

// Options converts the configuration into build options.
func (c Config) Options() mindmap.Options {
	return mindmap.Options{
		RootID:    c.Root.ID,
		RootLabel: c.Root.Label,
		RootColor: c.Root.Color,
		Palette:   c.Palette,
	}
}

func (c Config) validate() error {
	if _, _, _, err := color.HexToRGB(c.Root.Color); err != nil {
		return fmt.Errorf("root color: %w", err)
	}
	for i, p := range c.Palette {
		if _, _, _, err := color.HexToRGB(p); err != nil {
			return fmt.Errorf("palette[%d]: %w", i, err)
		}
	}
	return nil
}
