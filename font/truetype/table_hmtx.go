/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/sirupsen/logrus"

// hmtxTable holds the advance widths decoded from the horizontal metrics table (hmtx), one per
// glyph, in EM square units. Left side bearings are not kept.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hmtx
type hmtxTable struct {
	advances []int
}

func (f *font) parseHmtx(r *byteReader) (*hmtxTable, error) {
	_, has, err := f.seekToTable(r, "hmtx")
	if err != nil {
		return nil, err
	}
	if !has {
		logrus.Debug("hmtx table absent")
		return nil, nil
	}
	if f.hhea == nil {
		logrus.Debug("hhea table missing - no metric count for hmtx")
		return nil, nil
	}

	numGlyphs := f.numGlyphs()
	scale := f.scale()
	numberOfHMetrics := int(f.hhea.numberOfHMetrics)

	t := &hmtxTable{advances: make([]int, numGlyphs)}

	var last int
	for i := 0; i < numberOfHMetrics; i++ {
		var advanceWidth uint16
		var lsb int16
		err := r.read(&advanceWidth, &lsb)
		if err != nil {
			return nil, err
		}
		last = int(advanceWidth) / scale
		if i < numGlyphs {
			t.advances[i] = last
		}
	}

	// Remaining glyphs share the last advance, the leftSideBearings array that follows is not
	// needed.
	for i := numberOfHMetrics; i < numGlyphs; i++ {
		t.advances[i] = last
	}
	logrus.Debugf("hmtx: %d metrics for %d glyphs", numberOfHMetrics, numGlyphs)

	return t, nil
}
