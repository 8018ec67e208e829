/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/unidoc/unisubset/font/model"
)

// Options control which parts of the font program are decoded.
type Options struct {
	// SkipCmap leaves the character map of the decoded font empty.
	SkipCmap bool

	// SkipOutlines leaves all glyphs without outlines. Advances are still decoded.
	SkipOutlines bool
}

// Decode decodes the font program `data` into a glyph table.
func Decode(data []byte) (*model.Font, error) {
	return DecodeWithOptions(data, Options{})
}

// DecodeWithOptions decodes the font program `data` with `opts`.
// `data` is only read, the returned Font does not reference it.
func DecodeWithOptions(data []byte, opts Options) (*model.Font, error) {
	r := newByteReader(data)

	fnt, err := parseFont(r, opts)
	if err != nil {
		return nil, err
	}

	return fnt.export(), nil
}

// DecodeFile decodes the font program in the file given by `filePath`.
func DecodeFile(filePath string) (*model.Font, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	fnt, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "font file %s", filePath)
	}
	return fnt, nil
}

// Source is a model.Builder decoding a font program held in memory.
type Source struct {
	Data    []byte
	Options Options
}

// Build decodes the font program of `s`.
func (s Source) Build() (*model.Font, error) {
	return DecodeWithOptions(s.Data, s.Options)
}

var _ model.Builder = Source{}

// export assembles the glyph table from the decoded tables of `f`.
func (f *font) export() *model.Font {
	numGlyphs := f.numGlyphs()
	out := &model.Font{
		Metadata: f.metadata(),
		Glyphs:   make([]model.Glyph, numGlyphs),
	}

	for gid := range out.Glyphs {
		if f.glyf != nil && gid < len(f.glyf.glyphs) {
			out.Glyphs[gid] = *f.glyf.glyphs[gid]
		}
		if f.hmtx != nil && gid < len(f.hmtx.advances) {
			out.Glyphs[gid].Advance = f.hmtx.advances[gid]
		}
	}

	if f.cmap != nil {
		out.CharMap = f.cmap.charMap
	} else {
		out.CharMap = model.NewCharMap(numGlyphs)
	}

	logrus.Debugf("Decoded font %q (%s): %d glyphs, %d codes", out.Metadata.Name,
		f.name.GetNameByID(nameIDSubfamily), numGlyphs, out.CharMap.Len())
	return out
}

// metadata returns the font-wide information of `f`. OS/2 values take precedence over those of
// head and hhea.
func (f *font) metadata() model.Metadata {
	scale := f.scale()
	md := model.Metadata{
		Name:      f.name.family(),
		Scale:     scale,
		NumGlyphs: f.numGlyphs(),
	}

	if f.head != nil {
		md.Bold = f.head.macStyle.bold
		md.Italic = f.head.macStyle.italic
	}
	if f.hhea != nil {
		md.Ascent = int(f.hhea.ascender) / scale
		md.Descent = abs(int(f.hhea.descender)) / scale
		md.Leading = int(f.hhea.lineGap) / scale
	}
	if f.os2 != nil {
		md.Bold = f.os2.bold()
		md.Italic = f.os2.italic()
		md.Ascent = int(f.os2.usWinAscent) / scale
		md.Descent = int(f.os2.usWinDescent) / scale
		md.Leading = int(f.os2.sTypoLineGap) / scale
		if f.os2.version >= 2 {
			md.MissingGlyph = int(f.os2.usDefaultChar)
		}
	}
	if f.post != nil {
		md.ItalicAngle = f.post.italicAngle.Float64()
		md.FixedPitch = f.post.isFixedPitch != 0
		if md.ItalicAngle != 0 {
			md.Italic = true
		}
	}

	return md
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
