/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package render rasterizes glyph outlines for inspection.
package render

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/unidoc/unisubset/font/model"
)

// Glyph rasterizes `g` into an alpha mask with an EM square of `size` pixels. The mask is as
// wide as the advance (or the glyph, if wider) and spans ascent and descent of `md`, with the
// baseline at md.Ascent.
func Glyph(g *model.Glyph, md model.Metadata, size int) *image.Alpha {
	f := float32(size) / model.EmSquare

	width := g.Advance
	if g.Bounds.XMax > width {
		width = g.Bounds.XMax
	}
	height := md.Ascent + md.Descent
	if height <= 0 {
		height = model.EmSquare
	}
	w := max(1, int(math.Ceil(float64(float32(width)*f))))
	h := max(1, int(math.Ceil(float64(float32(height)*f))))

	pt := func(p model.Point) (float32, float32) {
		return float32(p.X) * f, float32(p.Y+md.Ascent) * f
	}

	z := vector.NewRasterizer(w, h)
	open := false
	for _, c := range g.Outline {
		x, y := pt(c.To)
		switch c.Op {
		case model.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(x, y)
			open = true
		case model.LineTo:
			z.LineTo(x, y)
		case model.QuadTo:
			cx, cy := pt(c.Control)
			z.QuadTo(cx, cy, x, y)
		}
	}
	if open {
		z.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
