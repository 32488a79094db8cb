package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/colornames"

	"lumen/gfx"
	"lumen/hal"
	"lumen/present"
)

// Config holds the window, presentation and demo settings.
type Config struct {
	// Display
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Scale  int    `json:"scale"`
	Format string `json:"format"`
	Title  string `json:"title"`

	// Presentation
	Present string `json:"present"`
	Clear   string `json:"clear"`

	// Demos
	Demo int   `json:"demo"`
	Seed int64 `json:"seed"`

	// Headless runs
	Hz    int    `json:"hz"`
	Ticks uint64 `json:"ticks"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values and empty strings mean "not given"; Demo uses -1 for that.
type Flags struct {
	Width   int
	Height  int
	Scale   int
	Format  string
	Present string
	Clear   string
	Demo    int
	Seed    int64
	Hz      int
	Ticks   uint64
}

// Resolve applies flags over the file values, then fills in defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Present != "" {
		c.Present = flags.Present
	}
	if flags.Clear != "" {
		c.Clear = flags.Clear
	}
	if flags.Demo >= 0 {
		c.Demo = flags.Demo
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Hz > 0 {
		c.Hz = flags.Hz
	}
	if flags.Ticks > 0 {
		c.Ticks = flags.Ticks
	}

	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Format == "" {
		c.Format = "rgba8888"
	}
	if c.Title == "" {
		c.Title = "lumen"
	}
	if c.Present == "" {
		c.Present = "auto"
	}
	if c.Clear == "" {
		c.Clear = "black"
	}
	if c.Demo < 0 {
		c.Demo = 0
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.Hz <= 0 {
		c.Hz = 60
	}
}

// Validate parses every string setting and joins the failures.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.PixelFormat(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.PresentMode(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ClearColor(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) PixelFormat() (hal.PixelFormat, error) {
	f, err := hal.ParsePixelFormat(c.Format)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return f, nil
}

func (c Config) PresentMode() (present.Mode, error) {
	m, err := present.ParseMode(c.Present)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return m, nil
}

func (c Config) ClearColor() (gfx.Color, error) {
	return ParseColor(c.Clear)
}

// HAL returns the host display settings.
func (c Config) HAL() (hal.Config, error) {
	f, err := c.PixelFormat()
	if err != nil {
		return hal.Config{}, err
	}
	return hal.Config{Width: c.Width, Height: c.Height, Format: f, Scale: c.Scale, Title: c.Title}, nil
}

// ParseColor accepts an SVG color name ("black", "cornflowerblue") or a hex
// triplet in the #rgb or #rrggbb form. The result is always opaque.
func ParseColor(s string) (gfx.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return gfx.FromRGBA(c).Opaque(), nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return gfx.Color{}, fmt.Errorf("config: unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return gfx.Color{}, fmt.Errorf("config: bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return gfx.Color{}, fmt.Errorf("config: bad hex color %q: %w", s, err)
	}
	return gfx.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
