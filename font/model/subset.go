/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/sirupsen/logrus"
)

// Subset returns a new Font containing only the glyphs of the characters in `chars`.
// Characters are sorted and de-duplicated; characters without a glyph are skipped. Glyph i of
// the subset is the glyph of the i-th remaining character, and the character map is renumbered
// accordingly. `f` is not modified.
func (f *Font) Subset(chars []rune) *Font {
	sub, _ := f.SubsetWithMapping(chars)
	return sub
}

// SubsetWithMapping is like Subset and also returns the glyph index in `f` of each glyph of the
// subset.
func (f *Font) SubsetWithMapping(chars []rune) (*Font, []int) {
	var set bitset.BitSet
	for _, r := range chars {
		if r < 0 || r > 0xFFFF {
			logrus.Debugf("Character %U outside 16-bit range - skipped", r)
			continue
		}
		set.Set(uint(r))
	}

	var codes []int
	var gids []int
	for c, ok := set.NextSet(0); ok; c, ok = set.NextSet(c + 1) {
		gid, has := f.Lookup(rune(c))
		if !has {
			logrus.Debugf("No glyph for %U - skipped", rune(c))
			continue
		}
		codes = append(codes, int(c))
		gids = append(gids, gid)
	}

	sub := &Font{
		Metadata: f.Metadata,
		Glyphs:   make([]Glyph, len(gids)),
		CharMap:  NewCharMap(len(gids)),
	}
	sub.Metadata.NumGlyphs = len(gids)
	sub.Metadata.MissingGlyph = 0
	sub.CharMap.Encoding = f.CharMap.Encoding

	for i, gid := range gids {
		sub.Glyphs[i] = f.Glyphs[gid].Clone()
		sub.CharMap.Set(codes[i], i)
		// Set skips glyph 0 in the reverse direction.
		sub.CharMap.GlyphToChar[i] = codes[i]
	}
	logrus.Debugf("Subset: %d of %d glyphs", len(gids), len(f.Glyphs))

	return sub, gids
}
