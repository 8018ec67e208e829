/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package model is the in-memory glyph table produced by the font decoders: font metadata,
// glyph outlines, advances, bounds and the character map. A Font is read-only once built;
// Subset projects it onto the characters actually used by a document.
//
// Coordinates are in the coordinate space of the embedding container: an EM square of 1024
// units with the Y axis pointing down.
package model

// EmSquare is the size of the design grid all coordinates are normalized to.
const EmSquare = 1024

// Builder builds a Font from some source (font program bytes, host font, container records).
type Builder interface {
	Build() (*Font, error)
}

// Metadata holds the font-wide information.
type Metadata struct {
	// Name is the family name.
	Name string

	// Scale is the number of design units per EM square unit (unitsPerEm / 1024), at least 1.
	Scale int

	// Ascent, Descent and Leading are in EM square units. Descent is a non-negative distance
	// below the baseline.
	Ascent  int
	Descent int
	Leading int

	Bold       bool
	Italic     bool
	FixedPitch bool

	// ItalicAngle in degrees counter-clockwise from the vertical.
	ItalicAngle float64

	NumGlyphs    int
	MissingGlyph int
}

// Font is the decoded glyph table.
type Font struct {
	Metadata Metadata

	// Glyphs is indexed by glyph index, len(Glyphs) == Metadata.NumGlyphs.
	Glyphs []Glyph

	CharMap CharMap
}

// NumGlyphs returns the number of glyphs in `f`.
func (f *Font) NumGlyphs() int {
	return len(f.Glyphs)
}

// Glyph returns the glyph with index `gid`.
func (f *Font) Glyph(gid int) (*Glyph, bool) {
	if gid < 0 || gid >= len(f.Glyphs) {
		return nil, false
	}
	return &f.Glyphs[gid], true
}

// Lookup returns the glyph index of character `r`. The bool flag is false when the character
// has no glyph in `f`.
func (f *Font) Lookup(r rune) (int, bool) {
	gid, ok := f.CharMap.Lookup(int(r))
	if !ok || gid >= len(f.Glyphs) {
		return 0, false
	}
	return gid, true
}

// Point is a position in container coordinates.
type Point struct {
	X, Y int
}

// ContourPoint is a glyph outline point with its on-curve flag.
type ContourPoint struct {
	X, Y    int
	OnCurve bool
}

// BBox is a bounding box in container coordinates.
type BBox struct {
	XMin, YMin, XMax, YMax int
}

// Empty returns true if `b` has zero area.
func (b BBox) Empty() bool {
	return b.XMax <= b.XMin || b.YMax <= b.YMin
}

// Glyph is a single glyph of the font.
type Glyph struct {
	// Points and EndPoints describe the contours the outline was built from. EndPoints holds the
	// index of the last point of each contour.
	Points    []ContourPoint
	EndPoints []int

	Outline Outline
	Bounds  BBox
	Advance int
}

// IsEmpty returns true if `g` has no outline.
func (g *Glyph) IsEmpty() bool {
	return len(g.Outline) == 0
}

// Clone returns a deep copy of `g`.
func (g Glyph) Clone() Glyph {
	c := g
	c.Points = append([]ContourPoint(nil), g.Points...)
	c.EndPoints = append([]int(nil), g.EndPoints...)
	c.Outline = append(Outline(nil), g.Outline...)
	return c
}
