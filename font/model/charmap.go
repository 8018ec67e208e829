/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

// Encoding selects the character code semantics the container uses for the character map.
type Encoding int

const (
	// EncodingUnicode is for 16-bit Unicode (UCS-2) codes.
	EncodingUnicode Encoding = iota
	// EncodingANSI is for single byte codes.
	EncodingANSI
	// EncodingShiftJIS is for double byte Shift-JIS codes.
	EncodingShiftJIS
)

func (e Encoding) String() string {
	switch e {
	case EncodingANSI:
		return "ANSI"
	case EncodingShiftJIS:
		return "ShiftJIS"
	}
	return "Unicode"
}

// CharMap is a bidirectional map between character codes (up to 16 bits) and glyph indices.
// A value of 0 means no mapping in both directions.
type CharMap struct {
	// CharToGlyph is sized to the largest mapped character code + 1.
	CharToGlyph []int

	// GlyphToChar is parallel to the glyph table.
	GlyphToChar []int

	Encoding Encoding
}

// NewCharMap returns an empty CharMap for a font with `numGlyphs` glyphs.
func NewCharMap(numGlyphs int) CharMap {
	return CharMap{GlyphToChar: make([]int, numGlyphs)}
}

// Grow makes codes below `n` defined (mapping to glyph 0 unless set).
func (m *CharMap) Grow(n int) {
	if n <= len(m.CharToGlyph) {
		return
	}
	grown := make([]int, n)
	copy(grown, m.CharToGlyph)
	m.CharToGlyph = grown
}

// Set maps character `code` to glyph `gid` and back. Later calls override earlier ones.
func (m *CharMap) Set(code, gid int) {
	if code < 0 || code > 0xFFFF {
		return
	}
	m.Grow(code + 1)
	if old := m.CharToGlyph[code]; old != gid && old < len(m.GlyphToChar) && m.GlyphToChar[old] == code {
		m.GlyphToChar[old] = 0
	}
	m.CharToGlyph[code] = gid
	if gid > 0 && code > 0 && gid < len(m.GlyphToChar) {
		m.GlyphToChar[gid] = code
	}
}

// Clear removes the mapping of character `code`, if any.
func (m *CharMap) Clear(code int) {
	if code < 0 || code >= len(m.CharToGlyph) {
		return
	}
	m.Set(code, 0)
}

// Lookup returns the glyph index for `code`. Glyph 0 only counts as a mapping when the reverse
// direction confirms it, as in a subset where glyph 0 is an ordinary glyph.
func (m *CharMap) Lookup(code int) (int, bool) {
	if code < 0 || code >= len(m.CharToGlyph) {
		return 0, false
	}
	gid := m.CharToGlyph[code]
	if gid == 0 {
		return 0, code > 0 && len(m.GlyphToChar) > 0 && m.GlyphToChar[0] == code
	}
	return gid, true
}

// Char returns the character code for glyph `gid`.
func (m *CharMap) Char(gid int) (int, bool) {
	if gid < 0 || gid >= len(m.GlyphToChar) {
		return 0, false
	}
	code := m.GlyphToChar[gid]
	return code, code != 0
}

// Len returns the number of mapped character codes.
func (m *CharMap) Len() int {
	n := 0
	for code := range m.CharToGlyph {
		if _, ok := m.Lookup(code); ok {
			n++
		}
	}
	return n
}
