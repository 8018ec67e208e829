/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/unidoc/unisubset/font/model"
	"github.com/unidoc/unisubset/font/truetype"
)

func TestGlyph(t *testing.T) {
	pts := []model.ContourPoint{
		{X: 0, Y: 0, OnCurve: true},
		{X: 100, Y: 0, OnCurve: true},
		{X: 50, Y: -100, OnCurve: true},
	}
	g := &model.Glyph{
		Points:    pts,
		EndPoints: []int{2},
		Outline:   model.NewOutline(pts, []int{2}),
		Bounds:    model.BBox{XMin: 0, YMin: -100, XMax: 100, YMax: 0},
		Advance:   100,
	}
	md := model.Metadata{Ascent: 100}

	img := Glyph(g, md, model.EmSquare)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
	assert.Greater(t, img.AlphaAt(50, 90).A, uint8(0xF0))
	assert.Equal(t, uint8(0), img.AlphaAt(5, 5).A)
	assert.Equal(t, uint8(0), img.AlphaAt(95, 10).A)

	half := Glyph(g, md, model.EmSquare/2)
	assert.Equal(t, 50, half.Bounds().Dx())
	assert.Greater(t, half.AlphaAt(25, 45).A, uint8(0xF0))
}

func TestGlyphEmpty(t *testing.T) {
	img := Glyph(&model.Glyph{}, model.Metadata{}, 64)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
	assert.Equal(t, uint8(0), img.AlphaAt(0, 10).A)
}

func TestGlyphGoRegular(t *testing.T) {
	fnt, err := truetype.Decode(goregular.TTF)
	require.NoError(t, err)

	gid, ok := fnt.Lookup('O')
	require.True(t, ok)
	img := Glyph(&fnt.Glyphs[gid], fnt.Metadata, 256)

	// The counter of the O is empty, the left stroke is filled.
	cx := img.Bounds().Dx() / 2
	baseline := fnt.Metadata.Ascent * 256 / model.EmSquare
	g := fnt.Glyphs[gid]
	cy := baseline + (g.Bounds.YMin+g.Bounds.YMax)/2*256/model.EmSquare
	assert.Equal(t, uint8(0), img.AlphaAt(cx, cy).A)

	filled := 0
	for x := 0; x < cx; x++ {
		if img.AlphaAt(x, cy).A > 0x80 {
			filled++
		}
	}
	assert.Greater(t, filled, 0)
}
