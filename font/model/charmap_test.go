/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharMapSet(t *testing.T) {
	cm := NewCharMap(10)
	cm.Set('a', 5)
	cm.Set('b', 9)
	cm.Set('c', 42) // glyph outside the table.
	cm.Set(0x10000, 1)
	cm.Set(-1, 1)

	require.Len(t, cm.CharToGlyph, 'c'+1)
	assert.Len(t, cm.GlyphToChar, 10)

	gid, ok := cm.Lookup('a')
	require.True(t, ok)
	assert.Equal(t, 5, gid)

	code, ok := cm.Char(9)
	require.True(t, ok)
	assert.Equal(t, int('b'), code)

	_, ok = cm.Lookup('z')
	assert.False(t, ok)
	_, ok = cm.Lookup('A')
	assert.False(t, ok)
	_, ok = cm.Char(1)
	assert.False(t, ok)
	_, ok = cm.Char(10)
	assert.False(t, ok)

	// Later mappings override earlier ones.
	cm.Set('a', 6)
	gid, _ = cm.Lookup('a')
	assert.Equal(t, 6, gid)
	code, _ = cm.Char(6)
	assert.Equal(t, int('a'), code)

	assert.Equal(t, 3, cm.Len())

	// The glyph that lost its code has no reverse mapping left.
	_, ok = cm.Char(5)
	assert.False(t, ok)
}

func TestCharMapClear(t *testing.T) {
	cm := NewCharMap(10)
	cm.Set('a', 5)
	cm.Set('b', 5)
	cm.Set('c', 7)

	cm.Clear('c')
	_, ok := cm.Lookup('c')
	assert.False(t, ok)
	_, ok = cm.Char(7)
	assert.False(t, ok)

	// Glyph 5 keeps the code of the remaining mapping.
	cm.Clear('a')
	code, ok := cm.Char(5)
	require.True(t, ok)
	assert.Equal(t, int('b'), code)

	// Codes never mapped leave the map unchanged.
	cm.Clear(0xF000)
	cm.Clear(-1)
	assert.Len(t, cm.CharToGlyph, 'c'+1)
	assert.Equal(t, 1, cm.Len())
}

func TestCharMapGlyphZero(t *testing.T) {
	cm := NewCharMap(3)
	cm.Set('x', 0)
	_, ok := cm.Lookup('x')
	assert.False(t, ok)

	// Glyph 0 is an ordinary glyph once the reverse map confirms it.
	cm.GlyphToChar[0] = 'x'
	gid, ok := cm.Lookup('x')
	require.True(t, ok)
	assert.Equal(t, 0, gid)
	_, ok = cm.Lookup(0)
	assert.False(t, ok)
}

func TestCharMapGrow(t *testing.T) {
	var cm CharMap
	cm.Grow(256)
	assert.Len(t, cm.CharToGlyph, 256)
	cm.Grow(10)
	assert.Len(t, cm.CharToGlyph, 256)
	assert.Equal(t, 0, cm.Len())
	assert.Equal(t, "Unicode", cm.Encoding.String())
	assert.Equal(t, "ShiftJIS", EncodingShiftJIS.String())
}
