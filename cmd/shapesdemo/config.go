package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/internal/imageio"
)

// Config holds the demo settings.
type Config struct {
	Width      int
	Height     int
	Output     string
	Base       string // optional image drawn over instead of a blank canvas
	Seed       uint64 // 0 picks a time-based seed
	Lines      int
	Points     int
	Circles    int
	Background string
	Bounds     string
	Labels     bool
	Verbose    bool
}

// Configuration errors.
var (
	errSize  = errors.New("width and height must be positive")
	errCount = errors.New("shape counts must not be negative")
)

// DefaultConfig returns the settings of the reference scene.
func DefaultConfig() Config {
	return Config{
		Width:      1000,
		Height:     1000,
		Output:     "image.png",
		Lines:      50,
		Points:     1000,
		Circles:    50,
		Background: "black",
		Bounds:     shapes.BoundsClip.String(),
	}
}

// ParseFlags parses args (without the program name) into a Config.
func ParseFlags(args []string) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("shapesdemo", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "image height")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output file (.png, .jpg, .bmp, .tiff)")
	fs.StringVar(&cfg.Base, "base", cfg.Base, "draw over this image instead of a blank canvas; overrides -width and -height")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for time-based")
	fs.IntVar(&cfg.Lines, "lines", cfg.Lines, "number of random lines")
	fs.IntVar(&cfg.Points, "points", cfg.Points, "number of random points")
	fs.IntVar(&cfg.Circles, "circles", cfg.Circles, "number of random circles")
	fs.StringVar(&cfg.Background, "background", cfg.Background, "background color name")
	fs.StringVar(&cfg.Bounds, "bounds", cfg.Bounds, "out-of-bounds policy: clip or wrap")
	fs.BoolVar(&cfg.Labels, "labels", cfg.Labels, "caption the fixed shapes")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every shape at debug level")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Base == "" && (c.Width <= 0 || c.Height <= 0) {
		return fmt.Errorf("config: %w (got %dx%d)", errSize, c.Width, c.Height)
	}
	if c.Lines < 0 || c.Points < 0 || c.Circles < 0 {
		return fmt.Errorf("config: %w", errCount)
	}
	if _, ok := shapes.Named(c.Background); !ok {
		return fmt.Errorf("config: unknown background color %q", c.Background)
	}
	if _, ok := shapes.ParseBoundsPolicy(c.Bounds); !ok {
		return fmt.Errorf("config: unknown bounds policy %q", c.Bounds)
	}
	if imageio.FormatFromPath(c.Output) == imageio.FormatUnknown {
		return fmt.Errorf("config: %w: %q", imageio.ErrUnsupportedFormat, c.Output)
	}
	return nil
}

// seed returns the configured seed, or one derived from the clock.
func (c Config) seed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano()) //nolint:gosec // any bit pattern is a valid seed
}
