/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidoc/unisubset/font/model"
)

// fontWithCmap returns a font program with `numGlyphs` empty glyphs and `cmap`.
func fontWithCmap(numGlyphs int, cmap []byte) []byte {
	return newTestFont().
		add("head", buildHead(1024, false, 0)).
		add("maxp", buildMaxp(numGlyphs)).
		add("cmap", cmap).
		bytes()
}

func TestCmapFormat4Delta(t *testing.T) {
	cmap := buildCmap(testSubtable{3, 1, buildCmapFormat4(testSegment{start: 0x41, end: 0x43})})
	fnt, err := Decode(fontWithCmap(0x50, cmap))
	require.NoError(t, err)

	for code := 0x41; code <= 0x43; code++ {
		gid, ok := fnt.CharMap.Lookup(code)
		require.True(t, ok)
		assert.Equal(t, code, gid)
		c, ok := fnt.CharMap.Char(gid)
		require.True(t, ok)
		assert.Equal(t, code, c)
	}
	_, ok := fnt.CharMap.Lookup(0x44)
	assert.False(t, ok)
	assert.Equal(t, 3, fnt.CharMap.Len())
	assert.Equal(t, model.EncodingUnicode, fnt.CharMap.Encoding)
}

func TestCmapFormat4Segments(t *testing.T) {
	cmap := buildCmap(testSubtable{3, 1, buildCmapFormat4(
		testSegment{start: 0x20, end: 0x22, delta: -0x1F},
		testSegment{start: 0x30, end: 0x33, delta: 2, glyphIDs: []uint16{5, 0, 7, 60}},
		testSegment{start: 0xF000, end: 0xF001, delta: 0x1010},
	)})
	fnt, err := Decode(fontWithCmap(20, cmap))
	require.NoError(t, err)

	expected := map[int]int{
		0x20: 1, 0x21: 2, 0x22: 3,
		0x30: 7, 0x32: 9,
		0xF000: 16, 0xF001: 17,
	}
	for code, gid := range expected {
		got, ok := fnt.CharMap.Lookup(code)
		assert.True(t, ok, "code 0x%X", code)
		assert.Equal(t, gid, got, "code 0x%X", code)
	}

	// Zero in the glyph id array and glyph ids past the glyph table are not mapped.
	_, ok := fnt.CharMap.Lookup(0x31)
	assert.False(t, ok)
	_, ok = fnt.CharMap.Lookup(0x33)
	assert.False(t, ok)

	assert.Len(t, fnt.CharMap.CharToGlyph, 0xF002)
	assert.Len(t, fnt.CharMap.GlyphToChar, 20)
}

func TestCmapFormat0(t *testing.T) {
	var ids [256]uint8
	for i := range ids {
		ids[i] = uint8(i % 7)
	}
	ids[200] = 250 // outside glyph table.

	cmap := buildCmap(testSubtable{1, 0, buildCmapFormat0(ids)})
	fnt, err := Decode(fontWithCmap(10, cmap))
	require.NoError(t, err)

	cm := fnt.CharMap
	require.Len(t, cm.CharToGlyph, 256)
	assert.Equal(t, model.EncodingANSI, cm.Encoding)
	assert.Equal(t, 0, cm.CharToGlyph[200])
	for code, gid := range cm.CharToGlyph {
		if gid == 0 {
			continue
		}
		assert.Equal(t, int(ids[code]), gid)
	}
	// The last code mapping to a glyph wins in the reverse direction.
	for gid := 1; gid < 7; gid++ {
		code, ok := cm.Char(gid)
		require.True(t, ok)
		assert.Equal(t, gid, cm.CharToGlyph[code])
	}
}

func TestCmapLastSubtableWins(t *testing.T) {
	var ids [256]uint8
	ids['A'] = 1
	ids['B'] = 2

	cmap := buildCmap(
		testSubtable{1, 0, buildCmapFormat0(ids)},
		testSubtable{3, 1, buildCmapFormat4(testSegment{start: 'A', end: 'A', delta: 3 - 'A'})},
	)
	fnt, err := Decode(fontWithCmap(5, cmap))
	require.NoError(t, err)

	gid, ok := fnt.Lookup('A')
	require.True(t, ok)
	assert.Equal(t, 3, gid)
	gid, ok = fnt.Lookup('B')
	require.True(t, ok)
	assert.Equal(t, 2, gid)
	assert.Equal(t, model.EncodingUnicode, fnt.CharMap.Encoding)

	// Glyph 1 lost its code to the later subtable.
	_, ok = fnt.CharMap.Char(1)
	assert.False(t, ok)
	code, ok := fnt.CharMap.Char(3)
	require.True(t, ok)
	assert.Equal(t, int('A'), code)
}

func TestCmapLaterSubtableUnmaps(t *testing.T) {
	var ids [256]uint8
	ids['A'] = 1
	ids['B'] = 2
	ids['C'] = 4

	// The format 4 subtable maps 'A' to glyph 0 and 'B' past the glyph table.
	cmap := buildCmap(
		testSubtable{1, 0, buildCmapFormat0(ids)},
		testSubtable{3, 1, buildCmapFormat4(
			testSegment{start: 'A', end: 'A', delta: -'A'},
			testSegment{start: 'B', end: 'B', delta: 100 - 'B'},
		)},
	)
	fnt, err := Decode(fontWithCmap(5, cmap))
	require.NoError(t, err)

	_, ok := fnt.Lookup('A')
	assert.False(t, ok)
	_, ok = fnt.Lookup('B')
	assert.False(t, ok)
	gid, ok := fnt.Lookup('C')
	require.True(t, ok)
	assert.Equal(t, 4, gid)

	for _, g := range []int{1, 2} {
		_, ok = fnt.CharMap.Char(g)
		assert.False(t, ok, "glyph %d", g)
	}
	assert.Equal(t, 1, fnt.CharMap.Len())
}

func TestCmapSkippedFormats(t *testing.T) {
	var format6 tableBuf
	format6.u16(6).u16(14).u16(0).u16('A').u16(1).u16(1)

	var format2 tableBuf
	format2.u16(2).u16(6).u16(0)

	cmap := buildCmap(
		testSubtable{1, 0, format6.b},
		testSubtable{3, 2, format2.b},
		testSubtable{3, 10, new(tableBuf).u16(12).b},
	)
	fnt, err := Decode(fontWithCmap(5, cmap))
	require.NoError(t, err)
	assert.Equal(t, 0, fnt.CharMap.Len())

	_, ok := fnt.Lookup('A')
	assert.False(t, ok)
}

func TestCmapSkipOption(t *testing.T) {
	cmap := buildCmap(testSubtable{3, 1, buildCmapFormat4(testSegment{start: 0x41, end: 0x43})})
	fnt, err := DecodeWithOptions(fontWithCmap(0x50, cmap), Options{SkipCmap: true})
	require.NoError(t, err)
	assert.Equal(t, 0, fnt.CharMap.Len())
	assert.Len(t, fnt.CharMap.GlyphToChar, 0x50)
}

func TestCmapFormat0Inverse(t *testing.T) {
	var ids [256]uint8
	for i := range ids {
		ids[i] = uint8(255 - i)
	}

	cmap := buildCmap(testSubtable{1, 0, buildCmapFormat0(ids)})
	fnt, err := Decode(fontWithCmap(256, cmap))
	require.NoError(t, err)

	cm := fnt.CharMap
	for code := 0; code < 256; code++ {
		gid := cm.CharToGlyph[code]
		assert.Equal(t, 255-code, gid)
		if gid == 0 {
			continue
		}
		assert.Equal(t, code, cm.GlyphToChar[gid])
	}
}
