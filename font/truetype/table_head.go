/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/sirupsen/logrus"

// Font header.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
type headTable struct {
	majorVersion       uint16
	minorVersion       uint16
	fontRevision       fixed
	checksumAdjustment uint32
	magicNumber        uint32
	flags              uint16
	unitsPerEm         uint16
	created            longdatetime
	modified           longdatetime
	xMin               int16
	yMin               int16
	xMax               int16
	yMax               int16
	macStyle           macStyle
	lowestRecPPEM      uint16
	fontDirectionHint  int16
	indexToLocFormat   int16
	glyphDataFormat    int16
}

// macStyle holds the style bits of the head table.
type macStyle struct {
	bold   bool
	italic bool
}

// scale returns the number of design units per EM square unit, at least 1.
func (t *headTable) scale() int {
	s := int(t.unitsPerEm) / 1024
	if s < 1 {
		return 1
	}
	return s
}

// shortOffsets returns true if the loca table holds 16-bit offsets.
func (t *headTable) shortOffsets() bool {
	return t.indexToLocFormat == 0
}

// parse the font's *head* table from `r` in the context of `f`.
func (f *font) parseHead(r *byteReader) (*headTable, error) {
	_, has, err := f.seekToTable(r, "head")
	if err != nil {
		return nil, err
	}
	if !has {
		logrus.Debug("head table absent")
		return nil, nil
	}

	t := &headTable{}
	err = r.read(&t.majorVersion, &t.minorVersion, &t.fontRevision, &t.checksumAdjustment, &t.magicNumber)
	if err != nil {
		return nil, err
	}
	if t.magicNumber != 0x5F0F3CF5 {
		logrus.Debugf("head magic number mismatch (0x%08X)", t.magicNumber)
	}

	err = r.read(&t.flags, &t.unitsPerEm, &t.created, &t.modified)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.xMin, &t.yMin, &t.xMax, &t.yMax)
	if err != nil {
		return nil, err
	}

	t.macStyle, err = readMacStyle(r)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.lowestRecPPEM, &t.fontDirectionHint, &t.indexToLocFormat, &t.glyphDataFormat)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("head: unitsPerEm=%d macStyle=%+v indexToLocFormat=%d", t.unitsPerEm, t.macStyle, t.indexToLocFormat)

	return t, nil
}

// readMacStyle reads the 16-bit macStyle field. Bit 0 is bold, bit 1 italic; the higher bits
// (underline, outline, shadow, condensed, extended) are not used.
func readMacStyle(r *byteReader) (macStyle, error) {
	var s macStyle
	if _, err := r.readBits(14); err != nil {
		return s, err
	}
	italic, err := r.readBits(1)
	if err != nil {
		return s, err
	}
	bold, err := r.readBits(1)
	if err != nil {
		return s, err
	}
	s.bold = bold == 1
	s.italic = italic == 1
	return s, nil
}
