/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/sirupsen/logrus"

// locaTable represents the Index to Location (loca) table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/loca
type locaTable struct {
	// Byte offsets relative to the beginning of the glyf table, numGlyphs+1 entries.
	// The extra entry at the end gives the length of the last glyph data element.
	offsets []int64
}

// glyphRange returns offset and length of the glyph data for glyph `gid`. The offset is relative
// to the beginning of the glyf table.
func (t *locaTable) glyphRange(gid int) (offset int64, length int64) {
	if gid < 0 || gid+1 >= len(t.offsets) {
		return 0, 0
	}
	return t.offsets[gid], t.offsets[gid+1] - t.offsets[gid]
}

func (f *font) parseLoca(r *byteReader) (*locaTable, error) {
	if f.head == nil || f.maxp == nil {
		logrus.Debug("head or maxp not set - loca not loaded")
		return nil, nil
	}

	tr, has, err := f.seekToTable(r, "loca")
	if err != nil {
		return nil, err
	}
	if !has {
		logrus.Debug("loca table not present")
		return nil, nil
	}

	if f.head.indexToLocFormat < 0 || f.head.indexToLocFormat > 1 {
		logrus.Debugf("Invalid indexToLocFormat (%d) - loca ignored", f.head.indexToLocFormat)
		return nil, nil
	}

	numOffsets := f.numGlyphs() + 1
	isShort := f.head.shortOffsets()

	entrySize := 4
	if isShort {
		entrySize = 2
	}
	if int64(numOffsets*entrySize) > int64(tr.length) {
		logrus.Debugf("loca too short for %d glyphs (%d bytes) - ignored", numOffsets-1, tr.length)
		return nil, nil
	}

	loca := &locaTable{offsets: make([]int64, 0, numOffsets)}
	if isShort {
		var offsets []offset16
		err := r.readSlice(&offsets, numOffsets)
		if err != nil {
			return nil, err
		}
		for _, o := range offsets {
			loca.offsets = append(loca.offsets, 2*int64(o))
		}
		return loca, nil
	}

	var offsets []offset32
	err = r.readSlice(&offsets, numOffsets)
	if err != nil {
		return nil, err
	}
	for _, o := range offsets {
		loca.offsets = append(loca.offsets, int64(o))
	}

	return loca, nil
}
