// Package config loads the barsheet configuration from YAML files.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/barsheet/page"
	"seehuhn.de/go/barsheet/symbol"
	"seehuhn.de/go/barsheet/text"
)

// Config holds all barsheet settings.
type Config struct {
	Listen    string        `yaml:"listen"`
	OutputDir string        `yaml:"output_dir"`
	Font      string        `yaml:"font"` // TTF, OTF or TTC file for non-Latin text
	Barcode   BarcodeConfig `yaml:"barcode"`
	Print     PrintConfig   `yaml:"print"`
	Log       LogConfig     `yaml:"log"`
}

// BarcodeConfig controls the rendering of individual barcodes.
type BarcodeConfig struct {
	Format       string  `yaml:"format"`
	ModuleWidth  float64 `yaml:"module_width"`
	Height       float64 `yaml:"height"`
	Margin       float64 `yaml:"margin"`
	LineColor    string  `yaml:"line_color"` // #rgb or #rrggbb
	DisplayValue bool    `yaml:"display_value"`
}

// PrintConfig selects the host print command.
type PrintConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // console | json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{Barcode: BarcodeConfig{Margin: 5}}
	c.defaults()
	return c
}

func (c *Config) defaults() {
	if c.Listen == "" {
		c.Listen = "localhost:8080"
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Barcode.Format == "" {
		c.Barcode.Format = symbol.FormatCode128
	}
	if c.Barcode.ModuleWidth <= 0 {
		c.Barcode.ModuleWidth = 2
	}
	if c.Barcode.Height <= 0 {
		c.Barcode.Height = 80
	}
	if c.Barcode.Margin < 0 {
		c.Barcode.Margin = 0
	}
	if c.Barcode.LineColor == "" {
		c.Barcode.LineColor = "#000"
	}
	if c.Print.Command == "" {
		c.Print.Command = "lp"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// Load reads a YAML configuration file.  Missing settings are filled in
// with their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML configuration.
func Parse(data []byte) (*Config, error) {
	// margin 5 is the default, but 0 is a valid explicit value
	c := &Config{Barcode: BarcodeConfig{Margin: 5}}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	c.defaults()
	if _, err := symbol.NewEncoder(c.Barcode.Format); err != nil {
		return nil, err
	}
	if _, err := ParseColor(c.Barcode.LineColor); err != nil {
		return nil, err
	}
	return c, nil
}

// Fonts reads the fallback font named by the font setting.  The result
// is nil if no font is configured.
func (c *Config) Fonts() ([][]byte, error) {
	if c.Font == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.Font)
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	if _, err := text.Bold(12, data); err != nil {
		return nil, fmt.Errorf("%s: %w", c.Font, err)
	}
	return [][]byte{data}, nil
}

// Layout returns the page layout, with the configured fallback font.
func (c *Config) Layout() (page.Layout, error) {
	l := page.DefaultLayout()
	fonts, err := c.Fonts()
	if err != nil {
		return l, err
	}
	l.Fonts = fonts
	return l, nil
}

// SymbolOptions converts the barcode settings into renderer options.
func (c *Config) SymbolOptions() (symbol.Options, error) {
	opts := symbol.DefaultOptions()
	opts.Format = c.Barcode.Format
	opts.ModuleWidth = c.Barcode.ModuleWidth
	opts.Height = c.Barcode.Height
	opts.Margin = c.Barcode.Margin
	opts.DisplayValue = c.Barcode.DisplayValue

	col, err := ParseColor(c.Barcode.LineColor)
	if err != nil {
		return opts, err
	}
	opts.LineColor = col
	opts.Fonts, err = c.Fonts()
	if err != nil {
		return opts, err
	}
	return opts, nil
}

// ParseColor parses an opaque colour in #rgb or #rrggbb notation.
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
