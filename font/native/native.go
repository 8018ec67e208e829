/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package native builds glyph tables from glyph and metric records that the embedding container
// has already parsed, bypassing table decoding. Records are expected in container coordinates.
package native

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/unidoc/unisubset/font/model"
)

// ErrInvalidRecord is returned for glyph records with inconsistent contour data.
var ErrInvalidRecord = errors.New("invalid glyph record")

// GlyphRecord is a single glyph as stored by the container.
type GlyphRecord struct {
	// Code is the character code of the glyph, 0 if it has none.
	Code int

	// Advance in EM square units.
	Advance int

	// Points and EndPoints describe the contours. EndPoints holds the index of the last point of
	// each contour in increasing order.
	Points    []model.ContourPoint
	EndPoints []int
}

// Source is a model.Builder for container glyph records. Glyph i of the built font is
// Glyphs[i].
type Source struct {
	Name     string
	Ascent   int
	Descent  int
	Leading  int
	Bold     bool
	Italic   bool
	Encoding model.Encoding

	Glyphs []GlyphRecord
}

var _ model.Builder = Source{}

// Build returns the glyph table for the records of `s`.
func (s Source) Build() (*model.Font, error) {
	numGlyphs := len(s.Glyphs)
	out := &model.Font{
		Metadata: model.Metadata{
			Name:      s.Name,
			Scale:     1,
			Ascent:    s.Ascent,
			Descent:   abs(s.Descent),
			Leading:   s.Leading,
			Bold:      s.Bold,
			Italic:    s.Italic,
			NumGlyphs: numGlyphs,
		},
		Glyphs:  make([]model.Glyph, numGlyphs),
		CharMap: model.NewCharMap(numGlyphs),
	}
	out.CharMap.Encoding = s.Encoding

	for gid, rec := range s.Glyphs {
		err := validate(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "glyph %d", gid)
		}

		g := model.Glyph{
			Points:    append([]model.ContourPoint(nil), rec.Points...),
			EndPoints: append([]int(nil), rec.EndPoints...),
			Advance:   rec.Advance,
		}
		g.Outline = model.NewOutline(g.Points, g.EndPoints)
		g.Bounds = bounds(g.Points)
		out.Glyphs[gid] = g

		if rec.Code > 0 {
			out.CharMap.Set(rec.Code, gid)
			if gid == 0 {
				out.CharMap.GlyphToChar[0] = rec.Code
			}
		}
	}
	logrus.Debugf("native %q: %d glyphs, %d codes", s.Name, numGlyphs, out.CharMap.Len())

	return out, nil
}

func validate(rec GlyphRecord) error {
	if rec.Code < 0 || rec.Code > 0xFFFF {
		return errors.Wrapf(ErrInvalidRecord, "character code %d out of range", rec.Code)
	}
	prev := -1
	for _, e := range rec.EndPoints {
		if e <= prev || e >= len(rec.Points) {
			return errors.Wrapf(ErrInvalidRecord, "contour end points %v for %d points", rec.EndPoints, len(rec.Points))
		}
		prev = e
	}
	if len(rec.EndPoints) == 0 && len(rec.Points) > 0 {
		return errors.Wrapf(ErrInvalidRecord, "%d points without contours", len(rec.Points))
	}
	return nil
}

// bounds returns the bounding box of `points`, the zero box if there are none.
func bounds(points []model.ContourPoint) model.BBox {
	var b model.BBox
	for i, p := range points {
		if i == 0 {
			b = model.BBox{XMin: p.X, YMin: p.Y, XMax: p.X, YMax: p.Y}
			continue
		}
		if p.X < b.XMin {
			b.XMin = p.X
		}
		if p.Y < b.YMin {
			b.YMin = p.Y
		}
		if p.X > b.XMax {
			b.XMax = p.X
		}
		if p.Y > b.YMax {
			b.YMax = p.Y
		}
	}
	return b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
