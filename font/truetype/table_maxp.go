/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/sirupsen/logrus"

// maxpTable represents the Maximum Profile (maxp) table.
// This table establishes the memory requirements for the font. Only the number of glyphs is
// used, the version 1.0 limits concern instruction execution.
type maxpTable struct {
	version   fixed
	numGlyphs uint16
}

// maxpLimits are the version 1.0 fields of the maxp table.
type maxpLimits struct {
	maxPoints             uint16
	maxContours           uint16
	maxCompositePoints    uint16
	maxCompositeContours  uint16
	maxZones              uint16
	maxTwilightPoints     uint16
	maxStorage            uint16
	maxFunctionDefs       uint16
	maxInstructionDefs    uint16
	maxStackElements      uint16
	maxSizeOfInstructions uint16
	maxComponentElements  uint16
	maxComponentDepth     uint16
}

func (f *font) parseMaxp(r *byteReader) (*maxpTable, error) {
	_, has, err := f.seekToTable(r, "maxp")
	if err != nil {
		return nil, err
	}
	if !has {
		logrus.Debug("maxp table not present")
		return nil, nil
	}

	t := &maxpTable{}
	err = r.read(&t.version, &t.numGlyphs)
	if err != nil {
		return nil, err
	}
	major, minor := t.version.Parts()
	logrus.Debugf("maxp: version %d.%04X numGlyphs=%d", major, minor, t.numGlyphs)

	if major < 1 {
		// Version 0.5 only has numGlyphs.
		return t, nil
	}

	var l maxpLimits
	err = r.read(&l.maxPoints, &l.maxContours, &l.maxCompositePoints, &l.maxCompositeContours)
	if err != nil {
		return nil, err
	}
	err = r.read(&l.maxZones, &l.maxTwilightPoints, &l.maxStorage, &l.maxFunctionDefs, &l.maxInstructionDefs)
	if err != nil {
		return nil, err
	}
	err = r.read(&l.maxStackElements, &l.maxSizeOfInstructions, &l.maxComponentElements, &l.maxComponentDepth)
	if err != nil {
		return nil, err
	}
	logrus.Tracef("maxp limits: %+v", l)

	return t, nil
}
