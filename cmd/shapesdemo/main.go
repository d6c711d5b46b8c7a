// Command shapesdemo draws the reference scene of the shapes library:
// two rectangles, a triangle, and a batch of random lines, points and
// circles, then saves the result.
package main

import (
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/internal/imageio"
	"github.com/gogpu/shapes/internal/label"
)

func main() {
	cfg, err := ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if cfg.Verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		shapes.SetLogger(logger)
	}

	if err := run(cfg, logger); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}
}

// run draws the scene described by cfg and writes it to cfg.Output.
func run(cfg Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	pm, err := newCanvas(cfg)
	if err != nil {
		return err
	}

	seed := cfg.seed()
	src := shapes.NewSource(seed)
	w, h := pm.Width(), pm.Height()

	fixed, captions := fixedShapes()
	shapes.DrawAll(pm, src, fixed...)
	shapes.DrawAll(pm, src, randomShapes(cfg, src, w, h)...)

	img := pm.Image()
	if cfg.Labels {
		drawCaptions(img, captions)
	}

	if err := imageio.Save(cfg.Output, img); err != nil {
		return err
	}

	logger.Info("demo saved",
		slog.String("output", cfg.Output),
		slog.Int("width", w),
		slog.Int("height", h),
		slog.Uint64("seed", seed),
		slog.Int("shapes", len(fixed)+cfg.Lines+cfg.Points+cfg.Circles))
	return nil
}

// newCanvas creates the pixmap, blank or loaded from cfg.Base.
func newCanvas(cfg Config) (*shapes.Pixmap, error) {
	bg, ok := shapes.Named(cfg.Background)
	if !ok {
		return nil, fmt.Errorf("unknown background color %q", cfg.Background)
	}
	policy, ok := shapes.ParseBoundsPolicy(cfg.Bounds)
	if !ok {
		return nil, fmt.Errorf("unknown bounds policy %q", cfg.Bounds)
	}

	if cfg.Base == "" {
		return shapes.NewPixmap(cfg.Width, cfg.Height,
			shapes.WithBackground(bg), shapes.WithBoundsPolicy(policy)), nil
	}

	base, err := imageio.Load(cfg.Base)
	if err != nil {
		return nil, err
	}
	if base.Bounds().Empty() {
		return nil, fmt.Errorf("base image %q is empty", cfg.Base)
	}
	return shapes.FromImage(base, shapes.WithBoundsPolicy(policy)), nil
}

// drawCaptions writes each caption just above its anchor, in white.
func drawCaptions(img *image.RGBA, captions []caption) {
	for _, c := range captions {
		label.Draw(img, c.at.X, c.at.Y, label.Title(c.text), shapes.White)
	}
}
