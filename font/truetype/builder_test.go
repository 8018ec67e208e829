/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"encoding/binary"
	"unicode/utf16"
)

// tableBuf is a big endian byte buffer for assembling test tables.
type tableBuf struct {
	b []byte
}

func (t *tableBuf) u8(v uint8) *tableBuf {
	t.b = append(t.b, v)
	return t
}

func (t *tableBuf) u16(v uint16) *tableBuf {
	t.b = binary.BigEndian.AppendUint16(t.b, v)
	return t
}

func (t *tableBuf) i16(v int16) *tableBuf {
	return t.u16(uint16(v))
}

func (t *tableBuf) u32(v uint32) *tableBuf {
	t.b = binary.BigEndian.AppendUint32(t.b, v)
	return t
}

func (t *tableBuf) raw(b []byte) *tableBuf {
	t.b = append(t.b, b...)
	return t
}

// testFont assembles a font program from raw tables.
type testFont struct {
	tags   []string
	tables map[string][]byte
}

func newTestFont() *testFont {
	return &testFont{tables: map[string][]byte{}}
}

func (tf *testFont) add(tag string, data []byte) *testFont {
	if _, has := tf.tables[tag]; !has {
		tf.tags = append(tf.tags, tag)
	}
	tf.tables[tag] = data
	return tf
}

// bytes returns the font program with the tables laid out after the directory in insertion order.
func (tf *testFont) bytes() []byte {
	var hdr tableBuf
	hdr.u32(0x00010000).u16(uint16(len(tf.tags))).u16(0).u16(0).u16(0)

	offset := offsetTableSize + tableRecordSize*len(tf.tags)
	var body []byte
	for _, name := range tf.tags {
		data := tf.tables[name]
		tg := makeTag(name)
		hdr.raw(tg[:]).u32(0).u32(uint32(offset + len(body))).u32(uint32(len(data)))
		body = append(body, data...)
		for len(body)%4 != 0 {
			body = append(body, 0)
		}
	}
	return append(hdr.b, body...)
}

func buildHead(unitsPerEm uint16, longOffsets bool, macStyle uint16) []byte {
	var t tableBuf
	t.u16(1).u16(0).u32(0x00010000).u32(0).u32(0x5F0F3CF5)
	t.u16(0).u16(unitsPerEm)
	t.u32(0).u32(0).u32(0).u32(0) // created, modified
	t.i16(0).i16(0).i16(0).i16(0)
	t.u16(macStyle).u16(8).i16(2)
	if longOffsets {
		t.i16(1)
	} else {
		t.i16(0)
	}
	t.i16(0)
	return t.b
}

func buildMaxp(numGlyphs int) []byte {
	var t tableBuf
	t.u32(0x00005000).u16(uint16(numGlyphs))
	return t.b
}

func buildHhea(ascender, descender, lineGap int16, numberOfHMetrics int) []byte {
	var t tableBuf
	t.u16(1).u16(0).i16(ascender).i16(descender).i16(lineGap)
	t.u16(0).i16(0).i16(0).i16(0)
	t.i16(1).i16(0).i16(0)
	t.u32(0).u32(0)
	t.i16(0).u16(uint16(numberOfHMetrics))
	return t.b
}

func buildHmtx(advances ...uint16) []byte {
	var t tableBuf
	for _, a := range advances {
		t.u16(a).i16(0)
	}
	return t.b
}

type os2Params struct {
	version     uint16
	weight      uint16
	fsSelection uint16
	typoLineGap int16
	winAscent   uint16
	winDescent  uint16
	defaultChar uint16
}

func buildOS2(p os2Params) []byte {
	var t tableBuf
	t.u16(p.version).i16(500).u16(p.weight).u16(5).u16(0)
	for i := 0; i < 11; i++ {
		t.i16(0) // sub/superscript, strikeout and sFamilyClass.
	}
	t.raw(make([]byte, 10))
	t.u32(0).u32(0).u32(0).u32(0)
	t.raw([]byte("TEST")).u16(p.fsSelection).u16(0x20).u16(0x7E)
	t.i16(0).i16(0).i16(p.typoLineGap).u16(p.winAscent).u16(p.winDescent)
	if p.version >= 1 {
		t.u32(1).u32(0)
	}
	if p.version >= 2 {
		t.i16(0).i16(0).u16(p.defaultChar).u16(0x20).u16(1)
	}
	return t.b
}

func buildPost(italicAngle int32, fixedPitch bool) []byte {
	var t tableBuf
	t.u32(0x00030000).u32(uint32(italicAngle)).i16(-100).i16(50)
	if fixedPitch {
		t.u32(1)
	} else {
		t.u32(0)
	}
	t.u32(0).u32(0).u32(0).u32(0)
	return t.b
}

type testNameRecord struct {
	platformID, encodingID, nameID uint16
	data                           []byte
}

func utf16be(s string) []byte {
	var t tableBuf
	for _, c := range utf16.Encode([]rune(s)) {
		t.u16(c)
	}
	return t.b
}

func buildName(records ...testNameRecord) []byte {
	var t tableBuf
	t.u16(0).u16(uint16(len(records))).u16(uint16(6 + 12*len(records)))
	var strs []byte
	for _, nr := range records {
		t.u16(nr.platformID).u16(nr.encodingID).u16(0).u16(nr.nameID)
		t.u16(uint16(len(nr.data))).u16(uint16(len(strs)))
		strs = append(strs, nr.data...)
	}
	return t.raw(strs).b
}

// testPoint is a glyph point in font design units.
type testPoint struct {
	x, y    int16
	onCurve bool
}

// buildSimpleGlyph encodes `contours` with 16-bit coordinate deltas.
func buildSimpleGlyph(contours ...[]testPoint) []byte {
	var pts []testPoint
	var endPts []uint16
	for _, c := range contours {
		pts = append(pts, c...)
		endPts = append(endPts, uint16(len(pts)-1))
	}

	var xMin, yMin, xMax, yMax int16
	for i, p := range pts {
		if i == 0 || p.x < xMin {
			xMin = p.x
		}
		if i == 0 || p.y < yMin {
			yMin = p.y
		}
		if i == 0 || p.x > xMax {
			xMax = p.x
		}
		if i == 0 || p.y > yMax {
			yMax = p.y
		}
	}

	var t tableBuf
	t.i16(int16(len(contours))).i16(xMin).i16(yMin).i16(xMax).i16(yMax)
	for _, e := range endPts {
		t.u16(e)
	}
	t.u16(0) // instructionLength
	for _, p := range pts {
		if p.onCurve {
			t.u8(uint8(onCurvePoint))
		} else {
			t.u8(0)
		}
	}
	var prev int16
	for _, p := range pts {
		t.i16(p.x - prev)
		prev = p.x
	}
	prev = 0
	for _, p := range pts {
		t.i16(p.y - prev)
		prev = p.y
	}
	return t.b
}

type testComponent struct {
	flags      compositeGlyphFlag
	glyphIndex uint16
	arg1, arg2 int16
	byteArgs   bool    // encode arg1 and arg2 as int8.
	scale      []int16 // f2dot14 values: 1 (uniform), 2 (x and y) or 4 (2x2).
}

func buildCompositeGlyph(bbox [4]int16, comps ...testComponent) []byte {
	var t tableBuf
	t.i16(-1).i16(bbox[0]).i16(bbox[1]).i16(bbox[2]).i16(bbox[3])
	for i, c := range comps {
		flags := c.flags
		if !c.byteArgs {
			flags |= arg1And2AreWords
		}
		switch len(c.scale) {
		case 1:
			flags |= weHaveAScale
		case 2:
			flags |= weHaveAnXAndYScale
		case 4:
			flags |= weHaveATwoByTwo
		}
		if i < len(comps)-1 {
			flags |= moreComponents
		}
		t.u16(uint16(flags)).u16(c.glyphIndex)
		if c.byteArgs {
			t.u8(uint8(int8(c.arg1))).u8(uint8(int8(c.arg2)))
		} else {
			t.i16(c.arg1).i16(c.arg2)
		}
		for _, s := range c.scale {
			t.i16(s)
		}
	}
	return t.b
}

// buildGlyf returns the glyf table and long loca table for `glyphs`.
func buildGlyf(glyphs ...[]byte) (glyf []byte, loca []byte) {
	var l tableBuf
	for _, g := range glyphs {
		l.u32(uint32(len(glyf)))
		glyf = append(glyf, g...)
		for len(glyf)%4 != 0 {
			glyf = append(glyf, 0)
		}
	}
	l.u32(uint32(len(glyf)))
	return glyf, l.b
}

type testSegment struct {
	start, end uint16
	delta      int16
	glyphIDs   []uint16 // indirect glyph ids, start..end, when non-nil.
}

// buildCmapFormat4 encodes `segs` (without the final 0xFFFF segment) as a format 4 subtable.
func buildCmapFormat4(segs ...testSegment) []byte {
	segs = append(segs, testSegment{start: 0xFFFF, end: 0xFFFF, delta: 1})
	segCount := len(segs)

	// idRangeOffset of segment i points from its own position into the trailing glyph id array.
	rangeOffsets := make([]uint16, segCount)
	var glyphIDs []uint16
	for i, s := range segs {
		if s.glyphIDs == nil {
			continue
		}
		rangeOffsets[i] = uint16(2*(segCount-i) + 2*len(glyphIDs))
		glyphIDs = append(glyphIDs, s.glyphIDs...)
	}

	var t tableBuf
	t.u16(4).u16(uint16(16 + 8*segCount + 2*len(glyphIDs))).u16(0)
	t.u16(uint16(2 * segCount)).u16(0).u16(0).u16(0)
	for _, s := range segs {
		t.u16(s.end)
	}
	t.u16(0)
	for _, s := range segs {
		t.u16(s.start)
	}
	for _, s := range segs {
		t.i16(s.delta)
	}
	for _, ro := range rangeOffsets {
		t.u16(ro)
	}
	for _, g := range glyphIDs {
		t.u16(g)
	}
	return t.b
}

func buildCmapFormat0(glyphIDs [256]uint8) []byte {
	var t tableBuf
	t.u16(0).u16(262).u16(0).raw(glyphIDs[:])
	return t.b
}

type testSubtable struct {
	platformID, encodingID uint16
	data                   []byte
}

func buildCmap(subtables ...testSubtable) []byte {
	var t tableBuf
	t.u16(0).u16(uint16(len(subtables)))
	offset := 4 + 8*len(subtables)
	for _, st := range subtables {
		t.u16(st.platformID).u16(st.encodingID).u32(uint32(offset))
		offset += len(st.data)
	}
	for _, st := range subtables {
		t.raw(st.data)
	}
	return t.b
}

// triangle is a single contour triangle in design units.
var triangle = []testPoint{{0, 0, true}, {100, 0, true}, {50, 100, true}}

// minimalFont returns a font program with the required tables for `glyphs` at 1024 units per em.
func minimalFont(unitsPerEm uint16, glyphs ...[]byte) *testFont {
	glyf, loca := buildGlyf(glyphs...)
	advances := make([]uint16, len(glyphs))
	for i := range advances {
		advances[i] = 500
	}
	return newTestFont().
		add("head", buildHead(unitsPerEm, true, 0)).
		add("maxp", buildMaxp(len(glyphs))).
		add("hhea", buildHhea(800, -200, 90, len(glyphs))).
		add("hmtx", buildHmtx(advances...)).
		add("loca", loca).
		add("glyf", glyf)
}
