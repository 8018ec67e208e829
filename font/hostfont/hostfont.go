/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package hostfont builds glyph tables from fonts loaded through the host font stack
// (golang.org/x/image/font/sfnt) instead of the table decoders. The output follows the same
// conventions as truetype.Decode: an EM square of 1024 units with the Y axis pointing down.
package hostfont

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/unidoc/unisubset/font/model"
)

// Source is a model.Builder for a font loaded by sfnt.
type Source struct {
	Font *sfnt.Font
}

var _ model.Builder = Source{}

// NewSource parses the font program `data` with sfnt.
func NewSource(data []byte) (Source, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return Source{}, errors.Wrap(err, "hostfont")
	}
	return Source{Font: f}, nil
}

// Build returns the glyph table of the font of `s`.
func (s Source) Build() (*model.Font, error) {
	if s.Font == nil {
		return nil, errors.New("hostfont: no font")
	}

	var buf sfnt.Buffer
	upem := int(s.Font.UnitsPerEm())
	scale := upem / model.EmSquare
	if scale < 1 {
		scale = 1
	}
	// At one pixel per design unit all values are design units in 26.6 fixed point.
	ppem := fixed.I(upem)

	md, err := metadata(s.Font, &buf, ppem, scale)
	if err != nil {
		return nil, err
	}

	out := &model.Font{
		Metadata: md,
		Glyphs:   make([]model.Glyph, md.NumGlyphs),
		CharMap:  model.NewCharMap(md.NumGlyphs),
	}

	for gid := range out.Glyphs {
		g := &out.Glyphs[gid]
		x := sfnt.GlyphIndex(gid)

		bounds, advance, err := s.Font.GlyphBounds(&buf, x, ppem, font.HintingNone)
		if err != nil {
			logrus.Debugf("Glyph %d: bounds: %v", gid, err)
		} else {
			g.Advance = advance.Round() / scale
			g.Bounds = model.BBox{
				XMin: bounds.Min.X.Round() / scale,
				YMin: bounds.Min.Y.Round() / scale,
				XMax: bounds.Max.X.Round() / scale,
				YMax: bounds.Max.Y.Round() / scale,
			}
		}

		segments, err := s.Font.LoadGlyph(&buf, x, ppem, nil)
		if err != nil {
			logrus.Debugf("Glyph %d: outline: %v - empty", gid, err)
			continue
		}
		appendSegments(g, segments, scale)
	}

	for code := 1; code <= 0xFFFF; code++ {
		if code >= 0xD800 && code <= 0xDFFF {
			continue
		}
		x, err := s.Font.GlyphIndex(&buf, rune(code))
		if err != nil {
			return nil, errors.Wrapf(err, "hostfont: glyph index of %U", rune(code))
		}
		if x != 0 {
			out.CharMap.Set(code, int(x))
		}
	}
	logrus.Debugf("hostfont %q: %d glyphs, %d codes", md.Name, md.NumGlyphs, out.CharMap.Len())

	return out, nil
}

func metadata(f *sfnt.Font, buf *sfnt.Buffer, ppem fixed.Int26_6, scale int) (model.Metadata, error) {
	md := model.Metadata{
		Scale:     scale,
		NumGlyphs: f.NumGlyphs(),
	}

	var err error
	md.Name, err = f.Name(buf, sfnt.NameIDFamily)
	if err != nil && err != sfnt.ErrNotFound {
		return md, errors.Wrap(err, "hostfont: family name")
	}

	// sfnt does not expose the style bits or the post table, the subfamily name is the closest
	// substitute.
	subfamily, err := f.Name(buf, sfnt.NameIDSubfamily)
	if err == nil {
		style := strings.ToLower(subfamily)
		md.Bold = strings.Contains(style, "bold")
		md.Italic = strings.Contains(style, "italic") || strings.Contains(style, "oblique")
	}

	m, err := f.Metrics(buf, ppem, font.HintingNone)
	if err != nil {
		return md, errors.Wrap(err, "hostfont: metrics")
	}
	md.Ascent = m.Ascent.Round() / scale
	md.Descent = m.Descent.Round() / scale
	md.Leading = (m.Height - m.Ascent - m.Descent).Round() / scale

	return md, nil
}

// appendSegments adds the path `segments` to `g`. Cubic segments are approximated by a single
// quadratic segment and open contours are closed with a line to their start.
func appendSegments(g *model.Glyph, segments sfnt.Segments, scale int) {
	pt := func(p fixed.Point26_6) model.Point {
		return model.Point{X: p.X.Round() / scale, Y: p.Y.Round() / scale}
	}
	addPoint := func(p model.Point, onCurve bool) {
		g.Points = append(g.Points, model.ContourPoint{X: p.X, Y: p.Y, OnCurve: onCurve})
	}

	// Contours end on their start point, as in outlines built by model.NewOutline.
	var start, last model.Point
	closeContour := func() {
		if len(g.Points) == 0 {
			return
		}
		g.EndPoints = append(g.EndPoints, len(g.Points)-1)
		if last != start {
			g.Outline = append(g.Outline, model.Command{Op: model.LineTo, To: start})
		}
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			closeContour()
			last = pt(seg.Args[0])
			start = last
			addPoint(last, true)
			g.Outline = append(g.Outline, model.Command{Op: model.MoveTo, To: last})
		case sfnt.SegmentOpLineTo:
			last = pt(seg.Args[0])
			addPoint(last, true)
			g.Outline = append(g.Outline, model.Command{Op: model.LineTo, To: last})
		case sfnt.SegmentOpQuadTo:
			ctrl, to := pt(seg.Args[0]), pt(seg.Args[1])
			addPoint(ctrl, false)
			addPoint(to, true)
			g.Outline = append(g.Outline, model.Command{Op: model.QuadTo, Control: ctrl, To: to})
			last = to
		case sfnt.SegmentOpCubeTo:
			c1, c2, to := pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2])
			ctrl := model.Point{
				X: (3*(c1.X+c2.X) - last.X - to.X) / 4,
				Y: (3*(c1.Y+c2.Y) - last.Y - to.Y) / 4,
			}
			addPoint(ctrl, false)
			addPoint(to, true)
			g.Outline = append(g.Outline, model.Command{Op: model.QuadTo, Control: ctrl, To: to})
			last = to
		}
	}
	closeContour()
}
