package main

import (
	"github.com/gogpu/shapes"
)

// caption ties a label to the shape it describes.
type caption struct {
	text string
	at   shapes.Point
}

// fixedShapes returns the explicitly placed shapes of the reference scene.
func fixedShapes() ([]shapes.Drawable, []caption) {
	rect1 := shapes.NewRectangle(shapes.Pt(150, 150), shapes.Pt(50, 50))
	rect2 := shapes.NewRectangle(shapes.Pt(300, 150), shapes.Pt(50, 400))
	tri := shapes.NewTriangle(shapes.Pt(500, 500), shapes.Pt(250, 700), shapes.Pt(700, 800))

	drawables := []shapes.Drawable{rect1, rect2, tri}
	captions := []caption{
		{"rectangle", shapes.Pt(50, 45)},
		{"rectangle", shapes.Pt(50, 415)},
		{"triangle", shapes.Pt(500, 495)},
	}
	return drawables, captions
}

// randomShapes returns the randomized part of the scene, in draw order:
// lines first, then points, then circles.
func randomShapes(cfg Config, src shapes.Source, width, height int) []shapes.Drawable {
	out := make([]shapes.Drawable, 0, cfg.Lines+cfg.Points+cfg.Circles)
	for range cfg.Lines {
		out = append(out, shapes.RandomLine(src, width, height))
	}
	for range cfg.Points {
		out = append(out, shapes.RandomPoint(src, width, height))
	}
	for range cfg.Circles {
		out = append(out, shapes.RandomCircle(src, width, height))
	}
	return out
}
