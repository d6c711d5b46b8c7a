package main

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/internal/imageio"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags(nil) = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("ParseFlags(nil) = %+v, want defaults", cfg)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-width", "320", "-height", "200", "-output", "x.bmp",
		"-seed", "9", "-circles", "3", "-bounds", "wrap", "-labels",
	})
	if err != nil {
		t.Fatalf("ParseFlags() = %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 200 || cfg.Output != "x.bmp" ||
		cfg.Seed != 9 || cfg.Circles != 3 || cfg.Bounds != "wrap" || !cfg.Labels {
		t.Errorf("ParseFlags() = %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "positive"},
		{"negative lines", func(c *Config) { c.Lines = -1 }, "negative"},
		{"bad color", func(c *Config) { c.Background = "blurple" }, "blurple"},
		{"bad bounds", func(c *Config) { c.Bounds = "panic" }, "panic"},
		{"bad output", func(c *Config) { c.Output = "x.gif" }, "unsupported"},
		{"base skips size", func(c *Config) { c.Width, c.Base = 0, "in.png" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Seed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1234
	if got := cfg.seed(); got != 1234 {
		t.Errorf("seed() = %d, want 1234", got)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 150
	cfg.Lines, cfg.Points, cfg.Circles = 5, 20, 5
	cfg.Seed = 42
	cfg.Labels = true
	cfg.Output = filepath.Join(dir, "scene.png")

	var logs bytes.Buffer
	if err := run(cfg, slog.New(slog.NewTextHandler(&logs, nil))); err != nil {
		t.Fatalf("run() = %v", err)
	}

	img, err := imageio.Load(cfg.Output)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 200, 150) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	pm := shapes.FromImage(img)
	if pm.Count(shapes.Black) == 200*150 {
		t.Error("saved scene is blank")
	}
	if !strings.Contains(logs.String(), "seed=42") {
		t.Errorf("log output missing seed: %s", logs.String())
	}
}

func TestRun_Reproducible(t *testing.T) {
	dir := t.TempDir()
	render := func(name string) *shapes.Pixmap {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 120, 120
		cfg.Seed = 7
		cfg.Output = filepath.Join(dir, name)
		if err := run(cfg, slog.New(slog.DiscardHandler)); err != nil {
			t.Fatalf("run() = %v", err)
		}
		img, err := imageio.Load(cfg.Output)
		if err != nil {
			t.Fatalf("Load() = %v", err)
		}
		return shapes.FromImage(img)
	}

	a, b := render("a.png"), render("b.bmp")
	for y := range 120 {
		for x := range 120 {
			if a.Pixel(x, y) != b.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) differs between runs with the same seed", x, y)
			}
		}
	}
}

func TestRun_Base(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.png")
	bg := shapes.NewPixmap(64, 32, shapes.WithBackground(shapes.White))
	if err := imageio.Save(base, bg.Image()); err != nil {
		t.Fatalf("Save(base) = %v", err)
	}

	cfg := DefaultConfig()
	cfg.Base = base
	cfg.Lines, cfg.Points, cfg.Circles = 1, 1, 1
	cfg.Seed = 3
	cfg.Output = filepath.Join(dir, "out.tiff")
	if err := run(cfg, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatalf("run() = %v", err)
	}

	img, err := imageio.Load(cfg.Output)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 64, 32) {
		t.Errorf("output bounds = %v, want the base image bounds", img.Bounds())
	}
}

func TestRun_MissingBase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Base = filepath.Join(t.TempDir(), "missing.png")
	cfg.Output = filepath.Join(t.TempDir(), "out.png")

	if err := run(cfg, slog.New(slog.DiscardHandler)); err == nil {
		t.Error("run() with a missing base image should fail")
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = "out.webp"
	err := run(cfg, slog.New(slog.DiscardHandler))
	if !errors.Is(err, imageio.ErrUnsupportedFormat) {
		t.Errorf("run() = %v, want ErrUnsupportedFormat", err)
	}
}

func TestFixedShapes(t *testing.T) {
	drawables, captions := fixedShapes()
	if len(drawables) != 3 || len(captions) != 3 {
		t.Fatalf("fixedShapes() = %d shapes, %d captions", len(drawables), len(captions))
	}
	if _, ok := drawables[2].(shapes.Triangle); !ok {
		t.Errorf("third fixed shape is %T, want Triangle", drawables[2])
	}
}

func TestRandomShapes_Order(t *testing.T) {
	cfg := Config{Lines: 2, Points: 3, Circles: 1}
	got := randomShapes(cfg, shapes.NewSource(1), 50, 50)
	if len(got) != 6 {
		t.Fatalf("randomShapes() returned %d shapes, want 6", len(got))
	}
	for i, s := range got {
		var ok bool
		switch {
		case i < 2:
			_, ok = s.(shapes.Line)
		case i < 5:
			_, ok = s.(shapes.Point)
		default:
			_, ok = s.(shapes.Circle)
		}
		if !ok {
			t.Errorf("shape %d is %T", i, s)
		}
	}
}
