/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/unidoc/unisubset/font/internal/transform"
	"github.com/unidoc/unisubset/font/model"
)

var (
	errGlyphInconsistent = errors.New("inconsistent glyph data")
	errPointMatching     = errors.New("component positioned by point matching")
)

// glyfTable represents the Glyph Data table (glyf).
// Information that describes the glyphs in the font in the TrueType outline format.
//
// The 'glyf' table is comprised of a list of glyph data blocks, each of which provides
// the description for a single glyph. Glyphs are referenced by identifiers (glyph IDs),
// which are sequential integers beginning at zero. The total number of glyphs is specified
// by the numGlyphs field in the 'maxp' table. The 'loca' table provides an array of offsets,
// indexed by glyph IDs, which provide the location of each glyph data block within the 'glyf' table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
type glyfTable struct {
	// glyphs is indexed by glyph ID. A nil entry is a glyph that has not been decoded yet.
	glyphs []*model.Glyph
}

// parseGlyf decodes all glyphs in two passes. Simple glyphs are decoded in the first pass,
// composite glyphs in the second, so that components always refer to decoded glyphs.
func (f *font) parseGlyf(r *byteReader) (*glyfTable, error) {
	numGlyphs := f.numGlyphs()
	t := &glyfTable{glyphs: make([]*model.Glyph, numGlyphs)}

	tr, has, err := f.seekToTable(r, "glyf")
	if err != nil {
		return nil, err
	}
	if !has || tr.length == 0 || f.loca == nil {
		logrus.Debug("glyf or loca table absent - empty outlines")
		t.fillEmpty()
		return t, nil
	}

	logrus.Debugf("parsing glyfs: %d glyphs, short offsets: %v", numGlyphs, f.head.shortOffsets())

	var composites []int
	for gid := 0; gid < numGlyphs; gid++ {
		gh, ok, err := f.seekToGlyph(r, tr, gid)
		if err != nil {
			return nil, err
		}
		if !ok {
			t.glyphs[gid] = &model.Glyph{}
			continue
		}
		if gh.numberOfContours < 0 {
			composites = append(composites, gid)
			continue
		}

		g, err := f.parseSimpleGlyph(r, gh)
		if err != nil {
			if errors.Is(err, ErrTruncatedBuffer) {
				return nil, errors.Wrapf(err, "glyf: glyph %d", gid)
			}
			logrus.Debugf("Glyph %d: %v - empty outline", gid, err)
			g = &model.Glyph{Bounds: gh.bounds(f.scale())}
		}
		t.glyphs[gid] = g
	}

	logrus.Debugf("composite glyphs: %d", len(composites))
	for _, gid := range composites {
		gh, _, err := f.seekToGlyph(r, tr, gid)
		if err != nil {
			return nil, err
		}

		g, err := f.parseCompositeGlyph(r, gh, t.glyphs)
		if err != nil {
			if errors.Is(err, ErrTruncatedBuffer) {
				return nil, errors.Wrapf(err, "glyf: glyph %d", gid)
			}
			logrus.Debugf("Glyph %d: %v - bounding box only", gid, err)
			g = &model.Glyph{Bounds: gh.bounds(f.scale())}
		}
		t.glyphs[gid] = g
	}

	t.fillEmpty()
	return t, nil
}

// fillEmpty sets all glyphs not decoded to empty glyphs.
func (t *glyfTable) fillEmpty() {
	for i, g := range t.glyphs {
		if g == nil {
			t.glyphs[i] = &model.Glyph{}
		}
	}
}

// seekToGlyph positions `r` at the data of glyph `gid` and reads its header. The bool flag is
// false for glyphs without data.
func (f *font) seekToGlyph(r *byteReader, tr tableRecord, gid int) (glyfGlyphHeader, bool, error) {
	var gh glyfGlyphHeader

	offset, length := f.loca.glyphRange(gid)
	if length == 0 {
		return gh, false, nil
	}
	if length < glyfGlyphHeaderSize || offset+length > int64(tr.length) {
		logrus.Debugf("Glyph %d: data outside glyf table (offset %d, length %d)", gid, offset, length)
		return gh, false, nil
	}

	err := r.Seek(int64(tr.offset) + offset)
	if err != nil {
		return gh, false, err
	}

	err = gh.read(r)
	if err != nil {
		return gh, false, err
	}
	logrus.Tracef("gid %d: %+v", gid, gh)
	return gh, true, nil
}

const glyfGlyphHeaderSize = 10

// glyfGlyphHeader represents the glyph header in the glyf table (one for each glyph).
type glyfGlyphHeader struct {
	numberOfContours int16
	xMin             int16
	yMin             int16
	xMax             int16
	yMax             int16
}

func (h *glyfGlyphHeader) read(r *byteReader) error {
	return r.read(&h.numberOfContours, &h.xMin, &h.yMin, &h.xMax, &h.yMax)
}

// bounds returns the bounding box of the glyph in container coordinates.
func (h glyfGlyphHeader) bounds(scale int) model.BBox {
	return model.BBox{
		XMin: int(h.xMin) / scale,
		YMin: -(int(h.yMax) / scale),
		XMax: int(h.xMax) / scale,
		YMax: -(int(h.yMin) / scale),
	}
}

// simpleGlyphFlag represents a flag data representation of a point in a simple glyph.
type simpleGlyphFlag uint8

const (
	onCurvePoint simpleGlyphFlag = (1 << iota)
	xShortVector
	yShortVector
	repeatFlag
	xIsSameOrPositiveVector
	yIsSameOrPositiveVector
	overlapSimple
	reserved
)

// IsSet returns true if `flag` is set in `f`.
func (f simpleGlyphFlag) IsSet(flag simpleGlyphFlag) bool {
	return f&flag != 0
}

func (f simpleGlyphFlag) String() string {
	var flags []string
	if f.IsSet(onCurvePoint) {
		flags = append(flags, "onCurvePoint")
	}
	if f.IsSet(xShortVector) {
		flags = append(flags, "xShortVector")
	}
	if f.IsSet(yShortVector) {
		flags = append(flags, "yShortVector")
	}
	if f.IsSet(repeatFlag) {
		flags = append(flags, "repeatFlag")
	}
	if f.IsSet(xIsSameOrPositiveVector) {
		flags = append(flags, "xIsSameOrPositiveVector")
	}
	if f.IsSet(yIsSameOrPositiveVector) {
		flags = append(flags, "yIsSameOrPositiveVector")
	}
	if f.IsSet(overlapSimple) {
		flags = append(flags, "overlapSimple")
	}
	if f.IsSet(reserved) {
		flags = append(flags, "reserved")
	}
	return strings.Join(flags, "|")
}

// parseSimpleGlyph decodes the simple glyph with header `gh` at the current position of `r`.
func (f *font) parseSimpleGlyph(r *byteReader, gh glyfGlyphHeader) (*model.Glyph, error) {
	scale := f.scale()
	g := &model.Glyph{Bounds: gh.bounds(scale)}

	numContours := int(gh.numberOfContours)
	if numContours == 0 {
		return g, nil
	}

	// list of point indices for the last point of each contour, in increasing numeric order.
	var endPtsOfContours []uint16
	err := r.readSlice(&endPtsOfContours, numContours)
	if err != nil {
		return nil, err
	}
	for i := 1; i < numContours; i++ {
		if endPtsOfContours[i] <= endPtsOfContours[i-1] {
			return nil, errors.Wrapf(errGlyphInconsistent, "contour end points not strictly increasing (%v)", endPtsOfContours)
		}
	}

	// Instructions are not executed.
	var instructionLength uint16
	err = r.read(&instructionLength)
	if err != nil {
		return nil, err
	}
	err = r.Skip(int(instructionLength))
	if err != nil {
		return nil, err
	}

	// total number of points (all contours).
	numPoints := int(endPtsOfContours[numContours-1]) + 1
	logrus.Tracef("Number of points: %d", numPoints)

	flags, err := readSimpleGlyphFlags(r, numPoints)
	if err != nil {
		return nil, err
	}

	xs, err := readCoordinates(r, flags, xShortVector, xIsSameOrPositiveVector)
	if err != nil {
		return nil, err
	}
	ys, err := readCoordinates(r, flags, yShortVector, yIsSameOrPositiveVector)
	if err != nil {
		return nil, err
	}

	g.Points = make([]model.ContourPoint, numPoints)
	for i := range g.Points {
		g.Points[i] = model.ContourPoint{
			X:       xs[i] / scale,
			Y:       -(ys[i] / scale),
			OnCurve: flags[i].IsSet(onCurvePoint),
		}
	}
	g.EndPoints = make([]int, numContours)
	for i, e := range endPtsOfContours {
		g.EndPoints[i] = int(e)
	}
	g.Outline = model.NewOutline(g.Points, g.EndPoints)

	return g, nil
}

// readSimpleGlyphFlags reads the run-length encoded flags of `numPoints` points.
func readSimpleGlyphFlags(r *byteReader, numPoints int) ([]simpleGlyphFlag, error) {
	flags := make([]simpleGlyphFlag, 0, numPoints)
	for len(flags) < numPoints {
		b, err := r.readUint8()
		if err != nil {
			return nil, err
		}
		flag := simpleGlyphFlag(b)
		logrus.Tracef("flag: %d (%s)", flag, flag)
		flags = append(flags, flag)

		if flag.IsSet(repeatFlag) {
			// following byte specifies number of times this flag is to be repeated.
			repeats, err := r.readUint8()
			if err != nil {
				return nil, err
			}
			for i := 0; i < int(repeats); i++ {
				flags = append(flags, flag)
			}
		}
	}
	if len(flags) != numPoints {
		logrus.Debugf("Number of flags != number of points (%d != %d) - truncated", len(flags), numPoints)
		flags = flags[:numPoints]
	}
	return flags, nil
}

// readCoordinates reads one coordinate per flag in `flags` and returns the absolute values.
// `short` and `same` are the flag bits for the coordinate being read.
func readCoordinates(r *byteReader, flags []simpleGlyphFlag, short, same simpleGlyphFlag) ([]int, error) {
	coords := make([]int, len(flags))
	var v int
	for i, flag := range flags {
		switch {
		case flag.IsSet(short):
			d, err := r.readUint8()
			if err != nil {
				return nil, err
			}
			if flag.IsSet(same) {
				v += int(d)
			} else {
				v -= int(d)
			}
		case flag.IsSet(same):
			// Same as previous.
		default:
			d, err := r.readInt16()
			if err != nil {
				return nil, err
			}
			v += int(d)
		}
		coords[i] = v
	}
	return coords, nil
}

type compositeGlyphFlag uint16

const (
	arg1And2AreWords compositeGlyphFlag = (1 << iota) // If set, the args are 16-bit (uint16/int16), otherwise uint8/int8.
	argsAreXYValues                                   // If set, the args are signed xy values (otherwise unsigned point numbers).
	roundXYToGrid
	weHaveAScale
	_              // reserved
	moreComponents // Indicates at least one glyph following this one.
	weHaveAnXAndYScale
	weHaveATwoByTwo
	weHaveInstructions
	useMyMetrics
	overlapCompound
	scaledComponentOffset
	unscaledComponentOffset
)

// IsSet returns true if `flag` is set in `f`.
func (f compositeGlyphFlag) IsSet(flag compositeGlyphFlag) bool {
	return f&flag != 0
}

func (f compositeGlyphFlag) String() string {
	var flags []string

	if f.IsSet(arg1And2AreWords) {
		flags = append(flags, "arg1And2AreWords")
	}
	if f.IsSet(argsAreXYValues) {
		flags = append(flags, "argsAreXYValues")
	}
	if f.IsSet(roundXYToGrid) {
		flags = append(flags, "roundXYToGrid")
	}
	if f.IsSet(weHaveAScale) {
		flags = append(flags, "weHaveAScale")
	}
	if f.IsSet(moreComponents) {
		flags = append(flags, "moreComponents")
	}
	if f.IsSet(weHaveAnXAndYScale) {
		flags = append(flags, "weHaveAnXAndYScale")
	}
	if f.IsSet(weHaveATwoByTwo) {
		flags = append(flags, "weHaveATwoByTwo")
	}
	if f.IsSet(weHaveInstructions) {
		flags = append(flags, "weHaveInstructions")
	}
	if f.IsSet(useMyMetrics) {
		flags = append(flags, "useMyMetrics")
	}
	if f.IsSet(overlapCompound) {
		flags = append(flags, "overlapCompound")
	}
	if f.IsSet(scaledComponentOffset) {
		flags = append(flags, "scaledComponentOffset")
	}
	if f.IsSet(unscaledComponentOffset) {
		flags = append(flags, "unscaledComponentOffset")
	}

	return strings.Join(flags, "|")
}

// compositeGlyphComponent is a component record of a composite glyph.
type compositeGlyphComponent struct {
	flags      compositeGlyphFlag
	glyphIndex GlyphIndex
	dx, dy     int // offsets in design units.

	// 2x2 transformation, identity when no scale is given.
	a, b, c, d f2dot14
}

// yFlip maps font coordinates (Y up) to container coordinates (Y down), yFlipInv maps back.
var (
	yFlip       = transform.NewMatrix(1, 0, 0, -1, 0, 0)
	yFlipInv, _ = yFlip.Inverse()
)

// matrix returns the transform of the component in container coordinates.
func (comp compositeGlyphComponent) matrix(scale int) transform.Matrix {
	m := transform.IdentityMatrix()
	if comp.flags.IsSet(weHaveAScale | weHaveAnXAndYScale | weHaveATwoByTwo) {
		m = transform.NewMatrix(comp.a.Float64(), comp.b.Float64(), comp.c.Float64(), comp.d.Float64(), 0, 0)
	}
	m = m.Mult(transform.TranslationMatrix(float64(comp.dx/scale), float64(comp.dy/scale)))
	return yFlipInv.Mult(m).Mult(yFlip)
}

func (comp *compositeGlyphComponent) read(r *byteReader) error {
	var flags, glyphIndex uint16
	err := r.read(&flags, &glyphIndex)
	if err != nil {
		return err
	}
	comp.flags = compositeGlyphFlag(flags)
	comp.glyphIndex = GlyphIndex(glyphIndex)
	logrus.Tracef("component: glyph %d flags %s", comp.glyphIndex, comp.flags)

	if comp.flags.IsSet(arg1And2AreWords) {
		var arg1, arg2 int16
		err := r.read(&arg1, &arg2)
		if err != nil {
			return err
		}
		comp.dx, comp.dy = int(arg1), int(arg2)
	} else {
		arg1, err := r.readInt8()
		if err != nil {
			return err
		}
		arg2, err := r.readInt8()
		if err != nil {
			return err
		}
		comp.dx, comp.dy = int(arg1), int(arg2)
	}

	comp.a, comp.d = 1<<14, 1<<14
	switch {
	case comp.flags.IsSet(weHaveAScale):
		var scale f2dot14
		err := r.read(&scale)
		if err != nil {
			return err
		}
		comp.a, comp.d = scale, scale
	case comp.flags.IsSet(weHaveAnXAndYScale):
		err := r.read(&comp.a, &comp.d)
		if err != nil {
			return err
		}
	case comp.flags.IsSet(weHaveATwoByTwo):
		err := r.read(&comp.a, &comp.b, &comp.c, &comp.d)
		if err != nil {
			return err
		}
	}
	return nil
}

// parseCompositeGlyph decodes the composite glyph with header `gh` at the current position of
// `r`. Components are taken from `glyphs`, which must hold every glyph decoded so far.
func (f *font) parseCompositeGlyph(r *byteReader, gh glyfGlyphHeader, glyphs []*model.Glyph) (*model.Glyph, error) {
	scale := f.scale()
	g := &model.Glyph{Bounds: gh.bounds(scale)}

	for {
		var comp compositeGlyphComponent
		err := comp.read(r)
		if err != nil {
			return nil, err
		}

		gid := int(comp.glyphIndex)
		if gid >= len(glyphs) || glyphs[gid] == nil {
			return nil, errors.Wrapf(ErrUnresolvableReference, "component glyph %d", gid)
		}
		if !comp.flags.IsSet(argsAreXYValues) {
			return nil, errors.Wrapf(errPointMatching, "component glyph %d", gid)
		}

		m := comp.matrix(scale)
		if logrus.IsLevelEnabled(logrus.TraceLevel) {
			tx, ty := m.Translation()
			logrus.Tracef("component glyph %d: %s rotation %.1f offset (%g, %g)", gid, m, m.Angle(), tx, ty)
		}
		base := len(g.Points)
		for _, p := range glyphs[gid].Points {
			x, y := m.Transform(float64(p.X), float64(p.Y))
			g.Points = append(g.Points, model.ContourPoint{
				X:       int(math.Round(x)),
				Y:       int(math.Round(y)),
				OnCurve: p.OnCurve,
			})
		}
		for _, e := range glyphs[gid].EndPoints {
			g.EndPoints = append(g.EndPoints, base+e)
		}

		if !comp.flags.IsSet(moreComponents) {
			break
		}
	}

	// Instructions following the last component are not needed.
	g.Outline = model.NewOutline(g.Points, g.EndPoints)
	return g, nil
}
